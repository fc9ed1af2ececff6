package valueobject

import "fmt"

// IdentityDocumentType is the kind of identity document a customer registers with.
type IdentityDocumentType struct {
	value string
}

const (
	identityDocumentCI       = "CI"  // national identity card
	identityDocumentPassport = "PAS" // passport
	identityDocumentNIT      = "NIT" // tax identification number
)

var (
	IdentityDocumentCI       = IdentityDocumentType{value: identityDocumentCI}
	IdentityDocumentPassport = IdentityDocumentType{value: identityDocumentPassport}
	IdentityDocumentNIT      = IdentityDocumentType{value: identityDocumentNIT}
)

var validIdentityDocumentTypes = map[string]IdentityDocumentType{
	identityDocumentCI:       IdentityDocumentCI,
	identityDocumentPassport: IdentityDocumentPassport,
	identityDocumentNIT:      IdentityDocumentNIT,
}

// NewIdentityDocumentType creates an IdentityDocumentType from a raw string.
func NewIdentityDocumentType(s string) (IdentityDocumentType, error) {
	v, ok := validIdentityDocumentTypes[s]
	if !ok {
		return IdentityDocumentType{}, fmt.Errorf("invalid identity document type: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (d IdentityDocumentType) String() string { return d.value }

// IsZero returns true when not initialised.
func (d IdentityDocumentType) IsZero() bool { return d.value == "" }
