package output

import (
	"encoding/json"

	"github.com/ukaji3/nbspell-go/pkg/nbspell/models"
)

// ToJSON serializes a report. Word sets are emitted as sorted arrays.
func ToJSON(r *models.Report, pretty bool) ([]byte, error) {
	if r == nil {
		r = models.NewReport()
	}
	if pretty {
		return json.MarshalIndent(r, "", "  ")
	}
	return json.Marshal(r)
}
