package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mapforge/internal/store"
)

var keyProvider string

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage stored API keys",
	Long: `key stores API keys in the local mapforge database for convenience.
The generation pipeline itself never reads this store; the CLI looks a key
up and passes it into each call explicitly.`,
}

var keySetCmd = &cobra.Command{
	Use:   "set <api-key>",
	Short: "Store an API key for a provider",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.PutKey("api_key:"+keyProvider, args[0]); err != nil {
			return err
		}
		fmt.Printf("Stored API key for %s\n", keyProvider)
		return nil
	},
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show whether a key is stored (the key itself is masked)",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		key, ok, err := s.GetKey("api_key:" + keyProvider)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("No API key stored for %s\n", keyProvider)
			return nil
		}
		fmt.Printf("API key for %s: %s\n", keyProvider, mask(key))
		return nil
	},
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove a stored API key",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer s.Close()
		if err := s.DeleteKey("api_key:" + keyProvider); err != nil {
			return err
		}
		fmt.Printf("Cleared API key for %s\n", keyProvider)
		return nil
	},
}

func openStore() (*store.Store, error) {
	path, err := storePath()
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

func mask(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}

func init() {
	keyCmd.PersistentFlags().StringVar(&keyProvider, "provider", "gemini", "provider the key belongs to")
	keyCmd.AddCommand(keySetCmd, keyShowCmd, keyClearCmd)
	rootCmd.AddCommand(keyCmd)
}
