package forge

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/mr-tron/base58"
	"github.com/tyler-smith/go-bip39"
)

// KeypairWallet is a locally held signer standing in for the browser
// wallet adapter: it signs with its own key and broadcasts over RPC.
type KeypairWallet struct {
	key    solana.PrivateKey
	client *rpc.Client
}

func NewKeypairWallet(secret []byte, client *rpc.Client) *KeypairWallet {
	return &KeypairWallet{key: solana.PrivateKey(secret), client: client}
}

func (w *KeypairWallet) PublicKey() solana.PublicKey {
	return w.key.PublicKey()
}

// SignAndSend completes the signature set (any ephemeral mint
// signature is already attached) and broadcasts.
func (w *KeypairWallet) SignAndSend(ctx context.Context, tx *solana.Transaction) (solana.Signature, error) {
	pub := w.key.PublicKey()
	_, err := tx.PartialSign(func(k solana.PublicKey) *solana.PrivateKey {
		if k.Equals(pub) {
			return &w.key
		}
		return nil
	})
	if err != nil {
		return solana.Signature{}, err
	}
	return w.client.SendTransaction(ctx, tx)
}

// Generate creates a fresh wallet and the mnemonic that recovers it.
// The 64-byte secret is seed||pubkey, the ed25519 expanded form solana
// keys use.
func Generate() (mnemonic string, pubkey string, secret []byte, err error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", "", nil, err
	}
	mnemonic, err = bip39.NewMnemonic(entropy)
	if err != nil {
		return "", "", nil, err
	}
	pubkey, secret = keyFromMnemonic(mnemonic)
	return mnemonic, pubkey, secret, nil
}

// Recover rebuilds the wallet secret from a mnemonic.
func Recover(mnemonic string) (pubkey string, secret []byte, err error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return "", nil, errors.New("invalid mnemonic")
	}
	pubkey, secret = keyFromMnemonic(mnemonic)
	return pubkey, secret, nil
}

func keyFromMnemonic(mnemonic string) (string, []byte) {
	seed := bip39.NewSeed(mnemonic, "")
	priv := ed25519.NewKeyFromSeed(seed[:32])
	pub := priv.Public().(ed25519.PublicKey)

	secret := make([]byte, 64)
	copy(secret[:32], seed[:32])
	copy(secret[32:], pub)
	return base58.Encode(pub), secret
}

// SaveKeystore writes the secret to path encrypted with the password.
func SaveKeystore(path string, secret, password []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	enc, err := encrypt(secret, password)
	if err != nil {
		return err
	}

	data, err := json.Marshal(map[string]string{
		"keypair": hex.EncodeToString(enc),
	})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// LoadKeystore reads and decrypts the wallet secret.
func LoadKeystore(path string, password []byte) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var stored map[string]string
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, err
	}

	enc, err := hex.DecodeString(stored["keypair"])
	if err != nil {
		return nil, err
	}
	return decrypt(enc, password)
}

func encrypt(data, password []byte) ([]byte, error) {
	block, err := aes.NewCipher(padkey(password))
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, data, nil), nil
}

func decrypt(data, password []byte) ([]byte, error) {
	block, err := aes.NewCipher(padkey(password))
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(data) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	nonce := data[:gcm.NonceSize()]
	return gcm.Open(nil, nonce, data[gcm.NonceSize():], nil)
}

func padkey(p []byte) []byte {
	k := make([]byte, 32)
	copy(k, p)
	return k
}
