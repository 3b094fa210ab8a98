package configs

// Storage configures where uploaded files are written.
type Storage struct {
	Dir string `env:"DIR" envDefault:"./media"`
}

// Wallet controls how declared wallet addresses are accepted.
type Wallet struct {
	// StrictAddress requires 0x-prefixed hex addresses and stores them in
	// EIP-55 checksum form.
	StrictAddress bool `env:"STRICT_ADDRESS" envDefault:"false"`
}
