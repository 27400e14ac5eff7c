package aggregation

import "github.com/vfg2006/metrics-api/internal/domain"

// AppleCareNumerator conta as vendas com aparelho em que o AppleCare foi comprado
func (s Set) AppleCareNumerator() int {
	return appleCareNumerator(s.WithDevice())
}

// AppleCareDenominator conta as vendas com aparelho, desconsiderando AppleCare avulso
func (s Set) AppleCareDenominator() int {
	return appleCareDenominator(s.WithDevice())
}

func (s Set) AppleCarePercent() int {
	return percent(s.AppleCareNumerator(), s.AppleCareDenominator())
}

func (s Set) CustomAppleCareNumerator(device domain.DeviceType) int {
	return appleCareNumerator(s.ofDevice(device))
}

func (s Set) CustomAppleCareDenominator(device domain.DeviceType) int {
	return appleCareDenominator(s.ofDevice(device))
}

func (s Set) CustomAppleCarePercent(device domain.DeviceType) int {
	return percent(s.CustomAppleCareNumerator(device), s.CustomAppleCareDenominator(device))
}

// IPhoneUnits conta os iPhones vendidos
func (s Set) IPhoneUnits() int {
	return len(s.ofDevice(domain.DeviceIPhone))
}

// ConnectedUnits conta os iPhones vendidos com conectividade
func (s Set) ConnectedUnits() int {
	n := 0
	for _, t := range s.ofDevice(domain.DeviceIPhone) {
		if t.Connected {
			n++
		}
	}
	return n
}

// ConnectivityPercent é a razão entre iPhones conectados e iPhones vendidos, truncada
func (s Set) ConnectivityPercent() int {
	iPhones := s.IPhoneUnits()
	if iPhones == 0 {
		return 0
	}
	return s.ConnectedUnits() * 100 / iPhones
}

func (s Set) ofDevice(device domain.DeviceType) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range s.WithDevice() {
		if t.DeviceType == device {
			out = append(out, t)
		}
	}
	return out
}

func appleCareNumerator(transactions []domain.Transaction) int {
	n := 0
	for _, t := range transactions {
		if t.BoughtAppleCare {
			n++
		}
	}
	return n
}

func appleCareDenominator(transactions []domain.Transaction) int {
	standalone := 0
	for _, t := range transactions {
		if t.BoughtAppleCare && t.IsAppleCareStandalone {
			standalone++
		}
	}
	return len(transactions) - standalone
}

// percent aplica a regra de três ramos: sem numerador é zero; numerador sem
// denominador é numerador*100; caso contrário a razão truncada.
func percent(numerator, denominator int) int {
	if numerator == 0 {
		return 0
	}
	if denominator == 0 {
		return numerator * 100
	}
	return numerator * 100 / denominator
}
