package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jhooc77/gringotts/internal/model"
)

type currencyFile struct {
	Name          string             `json:"name"`
	NamePlural    string             `json:"name_plural"`
	Digits        int                `json:"digits"`
	Denominations []denominationFile `json:"denominations"`
}

type denominationFile struct {
	Material       string `json:"material"`
	Value          int64  `json:"value"`
	UnitName       string `json:"unit_name"`
	UnitNamePlural string `json:"unit_name_plural"`
	StackSize      int    `json:"stack_size"`
}

// LoadCurrency reads a currency definition file and validates it
func LoadCurrency(path string) (*model.Currency, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading currency file %s: %w", path, err)
	}
	return ParseCurrency(raw)
}

// ParseCurrency parses a JSON currency definition
func ParseCurrency(raw []byte) (*model.Currency, error) {
	var file currencyFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing currency definition: %w", err)
	}

	denoms := make([]model.Denomination, 0, len(file.Denominations))
	for _, d := range file.Denominations {
		denoms = append(denoms, model.Denomination{
			Key:            model.ItemKey(d.Material),
			Value:          d.Value,
			UnitName:       d.UnitName,
			UnitNamePlural: d.UnitNamePlural,
			StackSize:      d.StackSize,
		})
	}

	return model.NewCurrency(file.Name, file.NamePlural, file.Digits, denoms)
}
