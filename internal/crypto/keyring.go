package crypto

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

// Keyring provides secure key storage abstraction
type Keyring interface {
	GetKey() (string, error)
	SetKey(password string) error
	DeleteKey() error
	IsAvailable() bool
}

const (
	ServiceName = "pizzabill"
	KeyName     = "db-encryption-key"

	// EnvKey overrides the system keyring when set
	EnvKey = "PIZZABILL_DB_KEY"
)

var ErrKeyNotFound = errors.New("encryption key not found")

// NewKeyring returns a keyring that prefers PIZZABILL_DB_KEY and falls back
// to the OS keyring (Keychain, Secret Service, Credential Manager).
func NewKeyring() Keyring {
	return &chainKeyring{
		env:    envKeyring{name: EnvKey},
		system: systemKeyring{service: ServiceName, user: KeyName},
	}
}

type chainKeyring struct {
	env    envKeyring
	system systemKeyring
}

func (k *chainKeyring) GetKey() (string, error) {
	if key, err := k.env.GetKey(); err == nil {
		return key, nil
	}
	return k.system.GetKey()
}

func (k *chainKeyring) SetKey(password string) error {
	if password == "" {
		return errors.New("password cannot be empty")
	}
	if !k.system.IsAvailable() {
		return fmt.Errorf("system keyring not available: please set %s to the database password", EnvKey)
	}
	return k.system.SetKey(password)
}

func (k *chainKeyring) DeleteKey() error {
	return k.system.DeleteKey()
}

func (k *chainKeyring) IsAvailable() bool {
	return k.env.IsAvailable() || k.system.IsAvailable()
}

// envKeyring reads the key from an environment variable (or .env file)
type envKeyring struct {
	name string
}

func (k envKeyring) GetKey() (string, error) {
	key := os.Getenv(k.name)
	if key == "" {
		return "", fmt.Errorf("%w: %s not set", ErrKeyNotFound, k.name)
	}
	return key, nil
}

func (k envKeyring) IsAvailable() bool {
	return os.Getenv(k.name) != ""
}

// systemKeyring stores the key in the OS credential store
type systemKeyring struct {
	service string
	user    string
}

func (k systemKeyring) GetKey() (string, error) {
	key, err := keyring.Get(k.service, k.user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", fmt.Errorf("%w in system keyring", ErrKeyNotFound)
		}
		return "", fmt.Errorf("failed to retrieve key from keyring: %w", err)
	}
	if key == "" {
		return "", errors.New("encryption key is empty")
	}
	return key, nil
}

func (k systemKeyring) SetKey(password string) error {
	if err := keyring.Set(k.service, k.user, password); err != nil {
		return fmt.Errorf("failed to store key in keyring: %w", err)
	}
	return nil
}

func (k systemKeyring) DeleteKey() error {
	if err := keyring.Delete(k.service, k.user); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return fmt.Errorf("%w in system keyring", ErrKeyNotFound)
		}
		return fmt.Errorf("failed to delete key from keyring: %w", err)
	}
	return nil
}

// IsAvailable probes the keyring with a throwaway entry
func (k systemKeyring) IsAvailable() bool {
	probe := "__pizzabill_availability_test__"
	if err := keyring.Set(k.service, probe, "test"); err != nil {
		return false
	}
	_ = keyring.Delete(k.service, probe)
	return true
}
