package profilesdk

import (
	"context"
	"net/http"
)

// ============================================================================
// Catalogs
// ============================================================================

func (c *Client) CreateCatalog(ctx context.Context, profileID string, req CatalogRequest) (*CatalogResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/profiles/"+profileID+"/catalogs", req)
	if err != nil {
		return nil, err
	}

	var catalog CatalogResponse
	if err := decodeJSON(resp, &catalog, http.StatusCreated); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (c *Client) ListCatalogs(ctx context.Context, profileID string) (*CatalogListResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/profiles/"+profileID+"/catalogs", nil)
	if err != nil {
		return nil, err
	}

	var list CatalogListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetCatalog(ctx context.Context, profileID, catalogID string) (*CatalogResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/profiles/"+profileID+"/catalogs/"+catalogID, nil)
	if err != nil {
		return nil, err
	}

	var catalog CatalogResponse
	if err := decodeJSON(resp, &catalog, http.StatusOK); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (c *Client) UpdateCatalog(ctx context.Context, profileID, catalogID string, req CatalogRequest) (*CatalogResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/v1/profiles/"+profileID+"/catalogs/"+catalogID, req)
	if err != nil {
		return nil, err
	}

	var catalog CatalogResponse
	if err := decodeJSON(resp, &catalog, http.StatusOK); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (c *Client) DeleteCatalog(ctx context.Context, profileID, catalogID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/profiles/"+profileID+"/catalogs/"+catalogID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Campaigns
// ============================================================================

func (c *Client) CreateCampaign(ctx context.Context, profileID string, req CampaignRequest) (*CampaignResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/profiles/"+profileID+"/campaigns", req)
	if err != nil {
		return nil, err
	}

	var campaign CampaignResponse
	if err := decodeJSON(resp, &campaign, http.StatusCreated); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (c *Client) ListCampaigns(ctx context.Context, profileID string) (*CampaignListResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/profiles/"+profileID+"/campaigns", nil)
	if err != nil {
		return nil, err
	}

	var list CampaignListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetCampaign(ctx context.Context, profileID, campaignID string) (*CampaignResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/profiles/"+profileID+"/campaigns/"+campaignID, nil)
	if err != nil {
		return nil, err
	}

	var campaign CampaignResponse
	if err := decodeJSON(resp, &campaign, http.StatusOK); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, profileID, campaignID string, req CampaignRequest) (*CampaignResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/v1/profiles/"+profileID+"/campaigns/"+campaignID, req)
	if err != nil {
		return nil, err
	}

	var campaign CampaignResponse
	if err := decodeJSON(resp, &campaign, http.StatusOK); err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (c *Client) DeleteCampaign(ctx context.Context, profileID, campaignID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/profiles/"+profileID+"/campaigns/"+campaignID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

// ============================================================================
// Orders
// ============================================================================

func (c *Client) CreateOrder(ctx context.Context, profileID string, req CreateOrderRequest) (*OrderResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/profiles/"+profileID+"/orders", req)
	if err != nil {
		return nil, err
	}

	var order OrderResponse
	if err := decodeJSON(resp, &order, http.StatusCreated); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListOrders(ctx context.Context, profileID string) (*OrderListResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/profiles/"+profileID+"/orders", nil)
	if err != nil {
		return nil, err
	}

	var list OrderListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetOrder(ctx context.Context, profileID, orderID string) (*OrderResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/profiles/"+profileID+"/orders/"+orderID, nil)
	if err != nil {
		return nil, err
	}

	var order OrderResponse
	if err := decodeJSON(resp, &order, http.StatusOK); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, profileID, orderID string, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPatch, "/v1/profiles/"+profileID+"/orders/"+orderID, req)
	if err != nil {
		return nil, err
	}

	var order OrderResponse
	if err := decodeJSON(resp, &order, http.StatusOK); err != nil {
		return nil, err
	}
	return &order, nil
}

// ============================================================================
// Payment methods
// ============================================================================

func (c *Client) CreatePaymentMethod(ctx context.Context, profileID string, req CreatePaymentMethodRequest) (*PaymentMethodResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, "/v1/profiles/"+profileID+"/payment-methods", req)
	if err != nil {
		return nil, err
	}

	var method PaymentMethodResponse
	if err := decodeJSON(resp, &method, http.StatusCreated); err != nil {
		return nil, err
	}
	return &method, nil
}

func (c *Client) ListPaymentMethods(ctx context.Context, profileID string) (*PaymentMethodListResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/profiles/"+profileID+"/payment-methods", nil)
	if err != nil {
		return nil, err
	}

	var list PaymentMethodListResponse
	if err := decodeJSON(resp, &list, http.StatusOK); err != nil {
		return nil, err
	}
	return &list, nil
}

func (c *Client) GetPaymentMethod(ctx context.Context, profileID, paymentMethodID string) (*PaymentMethodResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/profiles/"+profileID+"/payment-methods/"+paymentMethodID, nil)
	if err != nil {
		return nil, err
	}

	var method PaymentMethodResponse
	if err := decodeJSON(resp, &method, http.StatusOK); err != nil {
		return nil, err
	}
	return &method, nil
}

func (c *Client) DeletePaymentMethod(ctx context.Context, profileID, paymentMethodID string) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, "/v1/profiles/"+profileID+"/payment-methods/"+paymentMethodID, nil)
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}
