package card

import (
	"github.com/mmr-tortoise/cardinfo/internal/directory"
	"github.com/mmr-tortoise/cardinfo/internal/model"
)

// Lookup returns the raw card string registered for name.
// An unknown name is always model.KindInvalidInput.
func Lookup(dir directory.Directory, name string) (string, error) {
	raw, ok := dir.Get(name)
	if !ok {
		return "", model.InvalidInputf("No credit card was found for %s.", name)
	}
	return raw, nil
}

// GetInfo looks up name in dir and parses the result. Failures from either
// step are returned unchanged so their classification survives.
func GetInfo(dir directory.Directory, name string) (model.CardRecord, error) {
	raw, err := Lookup(dir, name)
	if err != nil {
		return model.CardRecord{}, err
	}
	return Parse(raw)
}
