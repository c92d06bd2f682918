package timezone

import "github.com/diegoclair/discord-timezone-bot/internal/domain"

// Support is the three-way result of validating a candidate zone id.
type Support int

const (
	SupportInvalid Support = iota
	SupportValid
	SupportCustom
)

// Validate resolves a candidate zone id against the catalog. The custom id is
// checked first: it resolves in the zoneinfo database but the product treats
// it as recognized-but-unsupported, shown upstream with a distinct message.
func (ix *ClassIndex) Validate(candidateID string) (Descriptor, Support) {
	if candidateID == domain.CustomZoneID {
		return Descriptor{}, SupportCustom
	}
	if desc, ok := ix.byID[candidateID]; ok {
		return desc, SupportValid
	}
	return Descriptor{}, SupportInvalid
}
