package domain

import (
	"errors"
	"time"
)

var (
	ErrMissingDate       = errors.New("transaction date is required")
	ErrInvalidDeviceType = errors.New("invalid device type")
)

// DeviceType identifica o aparelho vendido na transação
type DeviceType string

const (
	DeviceIPhone     DeviceType = "iPhone"
	DeviceIPad       DeviceType = "iPad"
	DeviceMac        DeviceType = "Mac"
	DeviceAppleWatch DeviceType = "Apple Watch"
	DeviceAppleTV    DeviceType = "Apple TV"
	DeviceHeadphones DeviceType = "Headphones"
	DeviceNone       DeviceType = "No Device"
)

// Devices lista os aparelhos que entram no detalhamento por dispositivo, na ordem exibida
var Devices = []DeviceType{
	DeviceIPhone,
	DeviceIPad,
	DeviceMac,
	DeviceAppleWatch,
	DeviceAppleTV,
	DeviceHeadphones,
}

func (d DeviceType) IsValid() bool {
	if d == DeviceNone {
		return true
	}

	for _, device := range Devices {
		if d == device {
			return true
		}
	}

	return false
}

// Transaction é o registro de uma interação com cliente
type Transaction struct {
	ID                    string     `json:"id"`
	OwnerID               string     `json:"ownerId"`
	Date                  time.Time  `json:"date"`
	DeviceType            DeviceType `json:"deviceType"`
	BoughtAppleCare       bool       `json:"boughtAppleCare"`
	IsAppleCareStandalone bool       `json:"isAppleCareStandalone"`
	GotLead               bool       `json:"gotLead"`
	Connected             bool       `json:"connected"`
	CreatedAt             time.Time  `json:"createdAt"`
}

// HasDevice informa se a transação envolveu algum aparelho
func (t Transaction) HasDevice() bool {
	return t.DeviceType != DeviceNone
}

func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return ErrMissingDate
	}

	if !t.DeviceType.IsValid() {
		return ErrInvalidDeviceType
	}

	return nil
}

// NewTransaction é o payload de criação de uma transação
type NewTransaction struct {
	Date                  *time.Time `json:"date,omitempty"`
	DeviceType            DeviceType `json:"deviceType"`
	BoughtAppleCare       bool       `json:"boughtAppleCare"`
	IsAppleCareStandalone bool       `json:"isAppleCareStandalone"`
	GotLead               bool       `json:"gotLead"`
	Connected             bool       `json:"connected"`
}

// TransactionFilter limita a listagem a [From, To)
type TransactionFilter struct {
	From *time.Time
	To   *time.Time
}
