package output

import (
	"github.com/bytedance/sonic"
	"github.com/di-void/minesweeper-annotate-go/pkg/annotate/models"
)

// ToJSON serializes a result.
func ToJSON(res *models.Result, pretty bool) ([]byte, error) {
	if pretty {
		return sonic.ConfigStd.MarshalIndent(res, "", "  ")
	}
	return sonic.ConfigStd.Marshal(res)
}
