package usecase

import (
	"github.com/jhoicas/Resguardos-api/internal/application/dto"
	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
	"github.com/jhoicas/Resguardos-api/internal/domain/selection"
)

func toMuebleResponse(m *entity.Mueble) dto.MuebleResponse {
	out := dto.MuebleResponse{
		ID:               m.ID,
		InventoryCode:    m.InventoryCode,
		Category:         m.Category,
		Description:      m.Description,
		Value:            m.Value,
		AcquisitionDate:  m.AcquisitionDate,
		AcquisitionForm:  m.AcquisitionForm,
		Supplier:         m.Supplier,
		Invoice:          m.Invoice,
		LocationState:    m.LocationState,
		LocationCity:     m.LocationCity,
		LocationNumber:   m.LocationNumber,
		Condition:        m.Condition,
		Status:           m.Status,
		ResponsibleParty: m.ResponsibleParty,
		DeprecationDate:  m.DeprecationDate,
		DeprecationCause: m.DeprecationCause,
		Custodian:        m.Custodian,
		Image:            m.Image,
		Origin:           m.Origin,
	}
	if m.Area != nil {
		out.Area = &dto.AreaResponse{ID: m.Area.ID, Name: m.Area.Name}
	}
	return out
}

func toMuebleList(rows []*entity.Mueble) []dto.MuebleResponse {
	out := make([]dto.MuebleResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, toMuebleResponse(m))
	}
	return out
}

func toSuggestions(list []entity.Suggestion) []dto.SuggestionResponse {
	out := make([]dto.SuggestionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SuggestionResponse{Value: s.Value, Type: string(s.Type)})
	}
	return out
}

func toConflict(c *selection.Conflict) *dto.ConflictResponse {
	if c == nil {
		return nil
	}
	return &dto.ConflictResponse{Kind: string(c.Kind), Value: c.Value, Message: c.Message}
}

func toResguardoResponse(r *entity.Resguardo) *dto.ResguardoResponse {
	items := make([]dto.ResguardoItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, dto.ResguardoItemResponse{
			MuebleID:      it.MuebleID,
			InventoryCode: it.InventoryCode,
			Description:   it.Description,
			Condition:     it.Condition,
			Origin:        it.Origin,
		})
	}
	return &dto.ResguardoResponse{
		ID:        r.ID,
		Folio:     r.Folio,
		Director:  r.Director,
		Area:      r.Area,
		Puesto:    r.Puesto,
		Custodian: r.Custodian,
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		Items:     items,
	}
}
