package doctor

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/colonyops/notifbadge/internal/core/badge"
	"github.com/colonyops/notifbadge/internal/core/config"
)

// statFunc is swapped in tests.
var statFunc = os.Stat

// ConfigCheck reports where the configuration came from and flags settings
// that load fine but will not behave as expected.
type ConfigCheck struct {
	path string
	cfg  *config.Config
}

func NewConfigCheck(path string, cfg *config.Config) *ConfigCheck {
	return &ConfigCheck{path: path, cfg: cfg}
}

func (c *ConfigCheck) Name() string {
	return "Configuration"
}

func (c *ConfigCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	switch _, err := statFunc(c.path); {
	case err == nil:
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusPass,
			Detail: c.path,
		})
	case errors.Is(err, fs.ErrNotExist):
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusWarn,
			Detail: "not found, using defaults",
		})
	default:
		result.Items = append(result.Items, CheckItem{
			Label:  "config file",
			Status: StatusFail,
			Detail: err.Error(),
		})
	}

	if c.cfg == nil {
		return result
	}

	if c.cfg.Badge.ID != badge.SidebarID {
		result.Items = append(result.Items, CheckItem{
			Label:  "badge id",
			Status: StatusWarn,
			Detail: "no element named " + c.cfg.Badge.ID + ", polls will not update any badge",
		})
	} else {
		result.Items = append(result.Items, CheckItem{
			Label:  "badge id",
			Status: StatusPass,
			Detail: c.cfg.Badge.ID,
		})
	}

	if c.cfg.Endpoint.Timeout >= c.cfg.Poll.Interval {
		result.Items = append(result.Items, CheckItem{
			Label:  "timeout",
			Status: StatusWarn,
			Detail: "request timeout " + c.cfg.Endpoint.Timeout.String() + " is not shorter than the poll interval " + c.cfg.Poll.Interval.String(),
		})
	}

	return result
}
