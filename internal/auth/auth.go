package auth

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/zalando/go-keyring"
	"golang.org/x/term"
)

const (
	serviceName   = "geminiml"
	geminiAccount = "gemini-api-key"
	geminiEnvVar  = "GEMINI_API_KEY"
)

// GetKey retrieves the Gemini API key and reports where it came from.
// If allowEnv is false, the environment variable is ignored.
func GetKey(allowEnv bool) (string, string) {
	// 1. Try Keychain
	key, err := keyring.Get(serviceName, geminiAccount)
	if err == nil && key != "" {
		return strings.TrimSpace(key), "Keychain"
	}

	if allowEnv {
		// 2. Try Env Var (optional)
		key = os.Getenv(geminiEnvVar)
		if key != "" {
			return strings.TrimSpace(key), "Environment Variable"
		}
	}

	return "", ""
}

// SaveKey saves the key to the OS Keychain.
func SaveKey(key string) error {
	return keyring.Set(serviceName, geminiAccount, strings.TrimSpace(key))
}

// DeleteKey removes the key from the OS Keychain.
func DeleteKey() error {
	return keyring.Delete(serviceName, geminiAccount)
}

// GetStatus returns whether a key exists in the keychain.
func GetStatus() bool {
	key, err := keyring.Get(serviceName, geminiAccount)
	if err != nil || key == "" {
		return false
	}
	return true
}

// PromptForAPIKey securely prompts the user for their API key.
func PromptForAPIKey(prompt string) (string, error) {
	fmt.Print(prompt)
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println() // Add newline after password input
	return strings.TrimSpace(string(bytePassword)), nil
}

// GetEnvKey retrieves the key from the environment only.
func GetEnvKey() (string, bool) {
	key := strings.TrimSpace(os.Getenv(geminiEnvVar))
	if key == "" {
		return "", false
	}
	return key, true
}
