package domain

import "time"

const NameNotProvided = "Name Not Provided"

type Share struct {
	Code      string    `json:"code"`
	OwnerID   string    `json:"ownerId"`
	OwnerName string    `json:"ownerName"`
	CreatedAt time.Time `json:"createdAt"`
}

// DisplayName retorna o nome do dono ou o texto padrão quando ausente
func (s Share) DisplayName() string {
	if s.OwnerName == "" {
		return NameNotProvided
	}
	return s.OwnerName
}

type ShareParticipant struct {
	Code       string    `json:"code"`
	ViewerID   string    `json:"viewerId"`
	AcceptedAt time.Time `json:"acceptedAt"`
}

// SharedSummary é o resumo de hoje de um vendedor que compartilhou seus dados
type SharedSummary struct {
	Code      string       `json:"code"`
	OwnerName string       `json:"ownerName"`
	Summary   TodaySummary `json:"summary"`
}
