package doctor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/colonyops/notifbadge/internal/core/badge"
	"github.com/colonyops/notifbadge/internal/core/notify"
)

// EndpointCheck fetches the notification list once and reports what the
// badge would show.
type EndpointCheck struct {
	source   notify.Source
	endpoint string
}

func NewEndpointCheck(source notify.Source, endpoint string) *EndpointCheck {
	return &EndpointCheck{source: source, endpoint: endpoint}
}

func (c *EndpointCheck) Name() string {
	return "Endpoint"
}

func (c *EndpointCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	start := time.Now()
	list, err := c.source.Fetch(ctx)
	took := time.Since(start).Round(time.Millisecond)

	if err != nil {
		label := "request"
		var fe *notify.FetchError
		if errors.As(err, &fe) && fe.Kind == notify.KindDecode {
			label = "response"
		}
		result.Items = append(result.Items, CheckItem{
			Label:  label,
			Status: StatusFail,
			Detail: err.Error(),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "request",
		Status: StatusPass,
		Detail: fmt.Sprintf("GET %s in %s", c.endpoint, took),
	})

	state := badge.StateFor(list.Len())
	detail := "hidden, no pending notifications"
	if state.Visible {
		detail = fmt.Sprintf("%q for %d pending", state.Text, list.Len())
	}
	result.Items = append(result.Items, CheckItem{
		Label:  "badge",
		Status: StatusPass,
		Detail: detail,
	})

	return result
}
