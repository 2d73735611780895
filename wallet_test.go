package forge

import (
	"bytes"
	"path/filepath"
	"testing"
)

func TestGenerateRecoverRoundtrip(t *testing.T) {
	mnemonic, pubkey, secret, err := Generate()
	if err != nil {
		t.Fatal(err)
	}
	if len(secret) != 64 {
		t.Fatalf("secret length = %d, want 64", len(secret))
	}

	gotPub, gotSecret, err := Recover(mnemonic)
	if err != nil {
		t.Fatal(err)
	}
	if gotPub != pubkey {
		t.Errorf("recovered pubkey = %s, want %s", gotPub, pubkey)
	}
	if !bytes.Equal(gotSecret, secret) {
		t.Error("recovered secret differs")
	}
}

func TestRecoverRejectsBadMnemonic(t *testing.T) {
	if _, _, err := Recover("not a real mnemonic"); err == nil {
		t.Fatal("want error for invalid mnemonic")
	}
}

func TestKeystoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "keypair.json")
	secret := []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef")
	password := []byte("hunter2")

	if err := SaveKeystore(path, secret, password); err != nil {
		t.Fatal(err)
	}

	got, err := LoadKeystore(path, password)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, secret) {
		t.Error("loaded secret differs")
	}
}

func TestKeystoreWrongPassword(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keypair.json")
	if err := SaveKeystore(path, []byte("secret"), []byte("right")); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKeystore(path, []byte("wrong")); err == nil {
		t.Fatal("want decryption failure with wrong password")
	}
}
