package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-app-template/internal/adapter"
	"github.com/MKhiriev/go-app-template/models"
)

const pathHomeItems = "/home/items"

type homeService struct {
	network adapter.NetworkClient
}

// NewHomeService returns a [HomeService] backed by the server API.
func NewHomeService(network adapter.NetworkClient) HomeService {
	return &homeService{network: network}
}

// LoadItems fetches the feed. Items of unknown categories are skipped.
func (h *homeService) LoadItems(ctx context.Context) ([]models.HomeItem, error) {
	req, err := adapter.NewRequestBuilder(h.network.BaseURL()).
		Path(pathHomeItems).
		Method(models.MethodGet).
		AcceptJSON().
		Build()
	if err != nil {
		return nil, err
	}

	body, err := h.network.Do(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := adapter.DecodeJSON[models.HomeItemsResponse](body)
	if err != nil {
		return nil, err
	}

	items := make([]models.HomeItem, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Category.Valid() {
			items = append(items, item)
		}
	}

	return items, nil
}

type mockHomeService struct {
	delay time.Duration
	now   func() time.Time
}

// NewMockHomeService returns a [HomeService] serving a fixed feed after
// delay.
func NewMockHomeService(delay time.Duration) HomeService {
	return &mockHomeService{delay: delay, now: time.Now}
}

func (m *mockHomeService) LoadItems(ctx context.Context) ([]models.HomeItem, error) {
	if err := sleep(ctx, m.delay); err != nil {
		return nil, err
	}

	now := m.now()
	return []models.HomeItem{
		{ID: "1", Title: "Welcome to Go App Template", Subtitle: ptr("Get started with your new app"), Category: models.CategoryFeatured, CreatedAt: now},
		{ID: "2", Title: "Feature Example", Subtitle: ptr("This is an example feature"), Category: models.CategoryRecent, CreatedAt: now},
		{ID: "3", Title: "Popular Content", Subtitle: ptr("Most viewed content"), Category: models.CategoryPopular, CreatedAt: now},
		{ID: "4", Title: "Recommended for You", Subtitle: ptr("Based on your preferences"), Category: models.CategoryRecommended, CreatedAt: now},
	}, nil
}

func ptr[T any](v T) *T {
	return &v
}
