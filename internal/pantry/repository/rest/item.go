package rest

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"pantry-assistant/internal/model"
	"pantry-assistant/internal/pantry/repository"
	pkgLog "pantry-assistant/pkg/log"
)

// implRepository implements repository.Repository over the REST client.
type implRepository struct {
	client *Client
	l      pkgLog.Logger
}

// New creates the REST-backed pantry repository.
func New(client *Client, l pkgLog.Logger) *implRepository {
	return &implRepository{client: client, l: l}
}

var _ repository.Repository = (*implRepository)(nil)

// itemDTO is the wire shape of a pantry item.
type itemDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Category string `json:"category,omitempty"`
}

func (d itemDTO) toModel() model.PantryItem {
	return model.PantryItem{
		ID:       d.ID,
		Name:     d.Name,
		Quantity: d.Quantity,
		Category: model.Category(d.Category),
	}
}

// ListItems fetches every item owned by userID via GET /users/{id}/items.
func (r *implRepository) ListItems(ctx context.Context, userID string) ([]model.PantryItem, error) {
	endpoint := fmt.Sprintf("%s/users/%s/items", r.client.baseURL, url.PathEscape(userID))

	var listResp struct {
		Items []itemDTO `json:"items"`
	}
	if err := r.client.doJSON(ctx, http.MethodGet, endpoint, nil, &listResp); err != nil {
		r.l.Errorf(ctx, "repository.ListItems: %v", err)
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToList, err)
	}

	items := make([]model.PantryItem, 0, len(listResp.Items))
	for _, dto := range listResp.Items {
		items = append(items, dto.toModel())
	}
	return items, nil
}

// CreateItem inserts a new item via POST /users/{id}/items.
func (r *implRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.PantryItem, error) {
	endpoint := fmt.Sprintf("%s/users/%s/items", r.client.baseURL, url.PathEscape(opt.UserID))

	body := itemDTO{
		Name:     opt.Name,
		Quantity: opt.Quantity,
		Category: string(opt.Category),
	}
	var created itemDTO
	if err := r.client.doJSON(ctx, http.MethodPost, endpoint, body, &created); err != nil {
		r.l.Errorf(ctx, "repository.CreateItem: %v", err)
		return model.PantryItem{}, fmt.Errorf("%w: %v", repository.ErrFailedToInsert, err)
	}
	return created.toModel(), nil
}

// SetQuantity updates an item's quantity via PATCH /items/{id}.
func (r *implRepository) SetQuantity(ctx context.Context, itemID string, quantity int) (model.PantryItem, error) {
	endpoint := fmt.Sprintf("%s/items/%s", r.client.baseURL, url.PathEscape(itemID))

	body := struct {
		Quantity int `json:"quantity"`
	}{Quantity: quantity}

	var updated itemDTO
	if err := r.client.doJSON(ctx, http.MethodPatch, endpoint, body, &updated); err != nil {
		r.l.Errorf(ctx, "repository.SetQuantity: %v", err)
		return model.PantryItem{}, fmt.Errorf("%w: %v", repository.ErrFailedToUpdate, err)
	}
	return updated.toModel(), nil
}

// DeleteItem removes an item via DELETE /items/{id}.
func (r *implRepository) DeleteItem(ctx context.Context, itemID string) error {
	endpoint := fmt.Sprintf("%s/items/%s", r.client.baseURL, url.PathEscape(itemID))

	if err := r.client.doJSON(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		r.l.Errorf(ctx, "repository.DeleteItem: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrFailedToDelete, err)
	}
	return nil
}
