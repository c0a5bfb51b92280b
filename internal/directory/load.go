package directory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/cardinfo/internal/model"
)

// fileFormat is the on-disk layout shared by the YAML and JSONC formats.
//
//	cards:
//	  Amy: "1234567 04 25 123"
type fileFormat struct {
	// Cards maps user names to raw card strings.
	Cards map[string]string `yaml:"cards" json:"cards"`
}

// Load reads a directory file and returns the Directory it describes.
// The format is chosen by extension: .yaml/.yml or .json/.jsonc.
//
// A missing file, an unsupported extension, or a file without entries is
// reported as model.KindInvalidInput since the path comes from the caller.
// Read and decode failures are model.KindOther and wrap the cause.
func Load(path string) (Directory, error) {
	// Step 1: Pick the decoder before touching the file so an unsupported
	// extension is reported even when the file is missing.
	decode, err := decoderFor(path)
	if err != nil {
		return Directory{}, err
	}

	// Step 2: Read the whole file. Directory files are small.
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Directory{}, model.InvalidInputf("Card directory file not found: %s.", path)
		}
		return Directory{}, model.WrapError(model.KindOther,
			fmt.Sprintf("Failed to read card directory file %s.", path), err)
	}

	// Step 3: Decode into the shared layout.
	var f fileFormat
	if err := decode(data, &f); err != nil {
		return Directory{}, model.WrapError(model.KindOther,
			fmt.Sprintf("Failed to decode card directory file %s.", path), err)
	}

	if len(f.Cards) == 0 {
		return Directory{}, model.InvalidInputf("Card directory file %s has no cards.", path)
	}

	return New(f.Cards), nil
}

type decodeFunc func(data []byte, v any) error

// decoderFor returns the decoder matching the file extension of path.
func decoderFor(path string) (decodeFunc, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return yaml.Unmarshal, nil
	case ".json", ".jsonc":
		return decodeJSONC, nil
	default:
		return nil, model.InvalidInputf(
			"Unsupported card directory file %q: expected .yaml, .yml, .json or .jsonc.", path)
	}
}

// decodeJSONC strips comments and trailing commas before handing the
// document to encoding/json.
func decodeJSONC(data []byte, v any) error {
	return json.Unmarshal(jsonc.ToJSON(data), v)
}
