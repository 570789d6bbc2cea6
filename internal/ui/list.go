package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/lrcx/internal/models"
)

var _ list.Item = resultItem{}

// resultItem wraps [models.JobResult] to implement [list.Item].
type resultItem struct {
	result models.JobResult
}

func (i resultItem) FilterValue() string {
	return i.result.Item.Name() + " " + i.result.Outcome.String()
}

func (i resultItem) Title() string { return i.result.Item.Name() }

func (i resultItem) Description() string {
	parts := []string{i.result.Outcome.String()}
	if i.result.Item.Artist != "" {
		parts = append(parts, fmt.Sprintf("%s - %s", i.result.Item.Artist, i.result.Item.Title))
	}
	if i.result.Romanized {
		parts = append(parts, "romanized")
	}
	if i.result.Embedded {
		parts = append(parts, "embedded")
	}
	if i.result.Err != nil {
		parts = append(parts, i.result.Err.Error())
	}
	return strings.Join(parts, " • ")
}

// resultItems lists failures first, then not-found items, then everything else, keeping
// completion order within each group.
func resultItems(results []models.JobResult) []list.Item {
	rank := func(o models.Outcome) int {
		switch o {
		case models.OutcomeFailed:
			return 0
		case models.OutcomeNotFound, models.OutcomeKept:
			return 1
		default:
			return 2
		}
	}

	items := make([]list.Item, 0, len(results))
	for r := 0; r <= 2; r++ {
		for _, res := range results {
			if rank(res.Outcome) == r {
				items = append(items, resultItem{result: res})
			}
		}
	}
	return items
}
