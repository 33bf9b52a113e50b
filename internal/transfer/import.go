package transfer

import (
	"github.com/tidwall/gjson"

	"github.com/KirkDiggler/rpg-charsheet/internal/errors"
	"github.com/KirkDiggler/rpg-charsheet/internal/record"
)

// ParseImport reads an import file holding either a bare character or an
// export envelope and returns the character record, not yet normalized.
// Returns errors.InvalidArgument for unreadable files
// Returns errors.FailedPrecondition for envelopes of another version
func ParseImport(data []byte) (record.Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.InvalidArgument("import file is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, errors.InvalidArgument("import file does not contain a character")
	}

	if version := root.Get("version"); version.Exists() && version.Type != gjson.Null {
		if version.Type != gjson.Number || version.Num != ExportVersion {
			return nil, errors.FailedPreconditionf("unsupported export version %s, expected %d",
				version.Raw, ExportVersion).
				WithMeta("version", version.Raw)
		}
	}

	payload := root
	if character := root.Get("character"); character.Exists() && character.Type != gjson.Null {
		if !character.IsObject() {
			return nil, errors.InvalidArgument("import file character is not an object")
		}
		payload = character
	}

	rec, err := record.Decode([]byte(payload.Raw))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode character")
	}
	return rec, nil
}
