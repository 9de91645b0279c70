package configs

import (
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExternalBank describes one partner-bank endpoint. The list is assembled once
// at startup and never mutated afterwards.
type ExternalBank struct {
	Code             string `yaml:"code"`
	DisplayName      string `yaml:"display_name"`
	BaseURL          string `yaml:"base_url"`
	Token            string `yaml:"token"`
	ConsentID        string `yaml:"consent_id"`
	AccountConsentID string `yaml:"account_consent_id"`
}

var EXTERNAL_BANKS []ExternalBank

type externalBanksFile struct {
	Banks []ExternalBank `yaml:"banks"`
}

// loadExternalBanks builds the partner-bank list from the well-known env
// triples, then appends any banks declared in the optional YAML config file
// whose codes are not already present. A bank without a base URL and a
// product-agreement consent id is not usable and is skipped.
func loadExternalBanks() {
	entries := []ExternalBank{
		{
			Code:             "vbank",
			DisplayName:      "Virtual Bank",
			BaseURL:          GetEnv("VBANK_API_BASE", ""),
			Token:            GetEnv("VBANK_API_TOKEN", ""),
			ConsentID:        GetEnv("VBANK_PRODUCT_AGREEMENT_CONSENT_ID", ""),
			AccountConsentID: GetEnv("VBANK_ACCOUNT_CONSENT_ID", ""),
		},
		{
			Code:             "abank",
			DisplayName:      "Awesome Bank",
			BaseURL:          GetEnv("ABANK_API_BASE", ""),
			Token:            GetEnv("ABANK_API_TOKEN", ""),
			ConsentID:        GetEnv("ABANK_PRODUCT_AGREEMENT_CONSENT_ID", ""),
			AccountConsentID: GetEnv("ABANK_ACCOUNT_CONSENT_ID", ""),
		},
		{
			Code:             "sbank",
			DisplayName:      "Smart Bank",
			BaseURL:          GetEnv("SBANK_API_BASE", ""),
			Token:            GetEnv("SBANK_API_TOKEN", ""),
			ConsentID:        GetEnv("SBANK_PRODUCT_AGREEMENT_CONSENT_ID", ""),
			AccountConsentID: GetEnv("SBANK_ACCOUNT_CONSENT_ID", ""),
		},
	}

	if EXTERNAL_BANKS_CONFIG_FILE != "" {
		entries = append(entries, readExternalBanksFile(EXTERNAL_BANKS_CONFIG_FILE)...)
	}

	banks := make([]ExternalBank, 0, len(entries))
	seen := make(map[string]struct{})
	for _, bank := range entries {
		bank.BaseURL = strings.TrimSpace(bank.BaseURL)
		bank.ConsentID = strings.TrimSpace(bank.ConsentID)
		if bank.BaseURL == "" || bank.ConsentID == "" {
			continue
		}
		if _, exists := seen[bank.Code]; exists {
			continue
		}
		seen[bank.Code] = struct{}{}
		if bank.DisplayName == "" {
			bank.DisplayName = bank.Code
		}
		banks = append(banks, bank)
	}

	EXTERNAL_BANKS = banks
}

func readExternalBanksFile(path string) []ExternalBank {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Error reading external banks config file %s: %v", path, err)
		return nil
	}

	var parsed externalBanksFile
	if err := yaml.Unmarshal(content, &parsed); err != nil {
		log.Printf("Error parsing external banks config file %s: %v", path, err)
		return nil
	}
	return parsed.Banks
}
