package search_test

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
)

// mueble arma un registro de prueba con los campos más usados.
type mueble struct {
	id          int64
	code        string
	description string
	category    string
	condition   string
	status      string
	area        string
	responsible string
	custodian   string
	origin      string
	value       string
}

func (m mueble) build() *entity.Mueble {
	out := &entity.Mueble{
		ID:               m.id,
		InventoryCode:    m.code,
		Description:      entity.StrPtr(m.description),
		Category:         entity.StrPtr(m.category),
		Condition:        entity.StrPtr(m.condition),
		Status:           entity.StrPtr(m.status),
		ResponsibleParty: entity.StrPtr(m.responsible),
		Custodian:        entity.StrPtr(m.custodian),
		Origin:           entity.StrPtr(m.origin),
	}
	if m.area != "" {
		out.Area = &entity.AreaRef{Name: m.area}
	}
	if m.value != "" {
		v := decimal.RequireFromString(m.value)
		out.Value = &v
	}
	return out
}

func records(ms ...mueble) []*entity.Mueble {
	out := make([]*entity.Mueble, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.build())
	}
	return out
}

func ids(rows []*entity.Mueble) []int64 {
	out := make([]int64, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.ID)
	}
	return out
}
