package entities

// AdminState is the moderation switch. When Enabled, TokenHash holds the
// SHA-256 digest of the capability token minted at enable time; the plain
// token is returned once and never stored.
type AdminState struct {
	Enabled   bool
	TokenHash string
}
