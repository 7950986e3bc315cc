package handlers

import (
	"github.com/gin-gonic/gin"

	"barberdesk/internal/domain/catalogs/barber"
	"barberdesk/internal/domain/catalogs/client"
	"barberdesk/internal/domain/catalogs/offering"
	"barberdesk/internal/domain/catalogs/product"
	"barberdesk/internal/infrastructure/http/v1/dto"
)

// NewClientHandler wires the Client catalog into the generic handler.
func NewClientHandler(base *BaseHandler, svc *client.Service) *CatalogHandler[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*client.Client, dto.CreateClientRequest, dto.UpdateClientRequest]{
		Service:    svc.CatalogService,
		EntityName: "client",
		MapCreateDTO: func(req dto.CreateClientRequest) (*client.Client, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateClientRequest, existing *client.Client) (*client.Client, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(c *client.Client) any { return dto.FromClient(c) },
	})
}

// NewOfferingHandler wires the Service catalog into the generic handler.
func NewOfferingHandler(base *BaseHandler, svc *offering.Service) *CatalogHandler[*offering.Offering, dto.CreateOfferingRequest, dto.UpdateOfferingRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*offering.Offering, dto.CreateOfferingRequest, dto.UpdateOfferingRequest]{
		Service:    svc.CatalogService,
		EntityName: "service",
		MapCreateDTO: func(req dto.CreateOfferingRequest) (*offering.Offering, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateOfferingRequest, existing *offering.Offering) (*offering.Offering, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(o *offering.Offering) any { return dto.FromOffering(o) },
	})
}

// NewProductHandler wires the Product catalog into the generic handler.
func NewProductHandler(base *BaseHandler, svc *product.Service) *CatalogHandler[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest] {
	return NewCatalogHandler(base, CatalogHandlerConfig[*product.Product, dto.CreateProductRequest, dto.UpdateProductRequest]{
		Service:    svc.CatalogService,
		EntityName: "product",
		MapCreateDTO: func(req dto.CreateProductRequest) (*product.Product, error) {
			return req.ToEntity()
		},
		MapUpdateDTO: func(req dto.UpdateProductRequest, existing *product.Product) (*product.Product, error) {
			if err := req.ApplyTo(existing); err != nil {
				return nil, err
			}
			return existing, nil
		},
		MapToDTO: func(p *product.Product) any { return dto.FromProduct(p) },
	})
}

// BarberHandler extends the generic catalog handler with the
// activate/deactivate endpoint.
type BarberHandler struct {
	*CatalogHandler[*barber.Barber, dto.CreateBarberRequest, dto.UpdateBarberRequest]
	service *barber.Service
}

// NewBarberHandler wires the Barber catalog into the generic handler.
func NewBarberHandler(base *BaseHandler, svc *barber.Service) *BarberHandler {
	inner := NewCatalogHandler(base, CatalogHandlerConfig[*barber.Barber, dto.CreateBarberRequest, dto.UpdateBarberRequest]{
		Service:    svc.CatalogService,
		EntityName: "barber",
		MapCreateDTO: func(req dto.CreateBarberRequest) (*barber.Barber, error) {
			return req.ToEntity(), nil
		},
		MapUpdateDTO: func(req dto.UpdateBarberRequest, existing *barber.Barber) (*barber.Barber, error) {
			req.ApplyTo(existing)
			return existing, nil
		},
		MapToDTO: func(b *barber.Barber) any { return dto.FromBarber(b) },
	})
	return &BarberHandler{CatalogHandler: inner, service: svc}
}

// SetActive handles POST /barbers/:id/active - activate or deactivate.
// Deactivation keeps all financial history.
func (h *BarberHandler) SetActive(c *gin.Context) {
	ctx := c.Request.Context()

	barberID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	var req dto.SetActiveRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.service.SetActive(ctx, barberID, req.Active); err != nil {
		h.Error(c, err)
		return
	}

	h.Success(c, "barber active flag updated")
}
