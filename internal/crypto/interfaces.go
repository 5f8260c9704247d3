package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChain turns caller-supplied passphrases into cipher keys and produces
// the per-message nonces. It knows nothing about images or transport.
//
// Flow:
//
//	Key   = NormalizeKey(passphrase)   // deterministic, no salt
//	Nonce = GenerateNonce()            // fresh for every embed
type KeyChain interface {
	// NormalizeKey repeats the passphrase's bytes until they cover
	// [KeySize] bytes and truncates the result to exactly [KeySize].
	// An empty passphrase yields [ErrEmptyPassphrase].
	NormalizeKey(passphrase string) ([]byte, error)

	// GenerateNonce returns [NonceSize] bytes from the OS CSPRNG.
	// It is safe for concurrent use.
	GenerateNonce() ([]byte, error)
}
