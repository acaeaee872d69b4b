package criteria

import (
	"strings"

	"github.com/viant/recrypt/service/dao"
)

// FilterByStatus reports whether status matches the status parameter, if any.
// Parameters other than dao.StatusParameter are ignored.
func FilterByStatus(status string, parameters []*dao.Parameter) bool {
	for _, parameter := range parameters {
		if parameter == nil || !strings.EqualFold(parameter.Name, dao.StatusParameter) {
			continue
		}
		switch actual := parameter.Value.(type) {
		case string:
			return strings.EqualFold(status, actual)
		case []string:
			for _, s := range actual {
				if strings.EqualFold(status, s) {
					return true
				}
			}
			return false
		}
	}
	return true
}
