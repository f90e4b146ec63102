// Package home implements the searchable item feed of the signed-in screen.
package home

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-app-template/internal/flow"
	"github.com/MKhiriev/go-app-template/internal/service"
	"github.com/MKhiriev/go-app-template/models"
)

// Cancellation keys of the feature's effects.
const (
	LoadID    flow.CancelID = "home.load"
	RefreshID flow.CancelID = "home.refresh"
)

type State struct {
	IsLoading    bool
	Items        []models.HomeItem
	Error        *Error
	SearchText   string
	SelectedItem *models.HomeItem
}

// FilteredItems returns the items whose title contains the search text,
// ignoring case. An empty search returns every item.
func (s State) FilteredItems() []models.HomeItem {
	if s.SearchText == "" {
		return s.Items
	}

	needle := strings.ToLower(s.SearchText)
	filtered := make([]models.HomeItem, 0, len(s.Items))
	for _, item := range s.Items {
		if strings.Contains(strings.ToLower(item.Title), needle) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

type Action interface {
	isHomeAction()
}

type (
	// OnAppear loads the feed the first time the screen is shown and
	// starts the auto-refresh timer when one is configured.
	OnAppear struct{}

	Refresh struct{}

	LoadItems struct{}

	ItemsLoaded struct {
		Items []models.HomeItem
	}

	ItemsLoadFailed struct {
		Err *Error
	}

	ItemTapped struct {
		Item models.HomeItem
	}

	SearchTextChanged struct {
		Text string
	}

	ClearError struct{}
)

func (OnAppear) isHomeAction()          {}
func (Refresh) isHomeAction()           {}
func (LoadItems) isHomeAction()         {}
func (ItemsLoaded) isHomeAction()       {}
func (ItemsLoadFailed) isHomeAction()   {}
func (ItemTapped) isHomeAction()        {}
func (SearchTextChanged) isHomeAction() {}
func (ClearError) isHomeAction()        {}

// New returns the reducer. A positive refreshInterval makes OnAppear start
// a timer that sends Refresh at that period until its scope is cancelled.
func New(svc service.HomeService, refreshInterval time.Duration) flow.Reducer[State, Action] {
	return func(s State, action Action) (State, flow.Effect[Action]) {
		switch a := action.(type) {
		case OnAppear:
			var effects []flow.Effect[Action]
			if len(s.Items) == 0 && !s.IsLoading {
				effects = append(effects, flow.Send[Action](LoadItems{}))
			}
			if refreshInterval > 0 {
				effects = append(effects, flow.Run(RefreshID, ticker(refreshInterval)))
			}
			return s, flow.Merge(effects...)

		case Refresh:
			s.Error = nil
			return s, flow.Send[Action](LoadItems{})

		case LoadItems:
			s.IsLoading = true
			s.Error = nil
			return s, flow.Run(LoadID, load(svc))

		case ItemsLoaded:
			s.IsLoading = false
			s.Items = a.Items
			return s, flow.None[Action]()

		case ItemsLoadFailed:
			s.IsLoading = false
			s.Error = a.Err
			return s, flow.None[Action]()

		case ItemTapped:
			item := a.Item
			s.SelectedItem = &item
			return s, flow.None[Action]()

		case SearchTextChanged:
			s.SearchText = a.Text
			return s, flow.None[Action]()

		case ClearError:
			s.Error = nil
			return s, flow.None[Action]()
		}

		return s, flow.None[Action]()
	}
}

func load(svc service.HomeService) flow.Work[Action] {
	return func(ctx context.Context, send func(Action)) {
		items, err := svc.LoadItems(ctx)
		if err != nil {
			send(ItemsLoadFailed{Err: ErrorFrom(err)})
			return
		}
		send(ItemsLoaded{Items: items})
	}
}

func ticker(interval time.Duration) flow.Work[Action] {
	return func(ctx context.Context, send func(Action)) {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				send(Refresh{})
			}
		}
	}
}
