package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Resguardos-api/internal/domain"
	"github.com/jhoicas/Resguardos-api/internal/domain/entity"
	"github.com/jhoicas/Resguardos-api/internal/domain/repository"
)

var _ repository.MuebleRepository = (*MuebleRepo)(nil)

// Columnas por campo buscable. El área puede estar normalizada (id_area -> areas) o como texto heredado.
var fieldColumns = map[entity.FieldType]string{
	entity.FieldID:          "m.id_inv",
	entity.FieldDescription: "m.descripcion",
	entity.FieldCategory:    "m.rubro",
	entity.FieldCondition:   "m.estado",
	entity.FieldStatus:      "m.estatus",
	entity.FieldArea:        "COALESCE(a.nombre, m.area)",
	entity.FieldResponsible: "m.usufinal",
	entity.FieldCustodian:   "m.resguardante",
	entity.FieldOrigin:      "m.origen",
}

// Columnas de ordenamiento que no son campos buscables.
var extraOrderColumns = map[string]string{
	"valor":             "m.valor",
	"fecha_adquisicion": "m.f_adq",
	"registro":          "m.id",
}

const muebleSelect = `
	SELECT m.id, m.id_inv, m.rubro, m.descripcion, m.valor, m.f_adq, m.adquisicion, m.proveedor, m.factura,
	       m.ubicacion_es, m.ubicacion_mu, m.ubicacion_no, m.estado, m.estatus,
	       m.id_area, a.nombre, m.area,
	       m.usufinal, m.fechabaja, m.causadebaja, m.resguardante, m.image_path, m.origen
	FROM muebles m
	LEFT JOIN areas a ON a.id_area = m.id_area`

// MuebleRepo implementación de MuebleRepository sobre PostgreSQL (usable con pool o tx).
type MuebleRepo struct {
	q Querier
}

// NewMuebleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMuebleRepository(q Querier) *MuebleRepo {
	return &MuebleRepo{q: q}
}

// Query arma el WHERE (grupos OR unidos con AND), ordena por una columna y pagina.
func (r *MuebleRepo) Query(ctx context.Context, q repository.MuebleQuery) ([]*entity.Mueble, int, error) {
	where, args, err := buildWhere(q.Where)
	if err != nil {
		return nil, 0, err
	}

	var total int
	countSQL := `SELECT COUNT(*) FROM muebles m LEFT JOIN areas a ON a.id_area = m.id_area` + where
	if err := r.q.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count muebles: %w", err)
	}

	order, err := orderColumn(q.OrderBy)
	if err != nil {
		return nil, 0, err
	}
	dir := "ASC"
	if q.Desc {
		dir = "DESC"
	}
	sql := fmt.Sprintf("%s%s ORDER BY %s %s NULLS LAST, m.id ASC", muebleSelect, where, order, dir)
	if q.Limit > 0 {
		args = append(args, q.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		sql += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query muebles: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Mueble, 0, q.Limit)
	for rows.Next() {
		m, err := scanMueble(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan mueble: %w", err)
		}
		list = append(list, m)
	}
	return list, total, rows.Err()
}

// Update escribe solo los campos presentes en el parche.
func (r *MuebleRepo) Update(ctx context.Context, id int64, patch entity.MueblePatch) error {
	if patch.Empty() {
		return domain.ErrInvalidInput
	}
	var (
		sets []string
		args []any
	)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Area != nil {
		add("id_area", patch.Area.ID)
		add("area", patch.Area.Name)
	}
	if patch.ResponsibleParty != nil {
		add("usufinal", *patch.ResponsibleParty)
	}
	if patch.Custodian != nil {
		add("resguardante", *patch.Custodian)
	}
	args = append(args, id)
	sql := fmt.Sprintf("UPDATE muebles SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))

	cmd, err := r.q.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update mueble: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// buildWhere traduce los grupos de predicados a SQL con parámetros posicionales.
func buildWhere(groups []repository.PredicateGroup) (string, []any, error) {
	var (
		clauses []string
		args    []any
	)
	for _, g := range groups {
		if len(g) == 0 {
			continue
		}
		ors := make([]string, 0, len(g))
		for _, p := range g {
			col, ok := fieldColumns[p.Field]
			if !ok {
				return "", nil, domain.ErrInvalidInput
			}
			switch p.Op {
			case repository.OpEq:
				args = append(args, p.Value)
				ors = append(ors, fmt.Sprintf("%s = $%d", col, len(args)))
			case repository.OpILike, "":
				args = append(args, likePattern(p.Value))
				ors = append(ors, fmt.Sprintf("%s ILIKE $%d", col, len(args)))
			default:
				return "", nil, domain.ErrInvalidInput
			}
		}
		clauses = append(clauses, "("+strings.Join(ors, " OR ")+")")
	}
	if len(clauses) == 0 {
		return "", nil, nil
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

func orderColumn(field string) (string, error) {
	if field == "" {
		return "m.id_inv", nil
	}
	if col, ok := fieldColumns[entity.FieldType(field)]; ok {
		return col, nil
	}
	if col, ok := extraOrderColumns[field]; ok {
		return col, nil
	}
	return "", domain.ErrInvalidInput
}

// scanMueble lee una fila y normaliza el área: objeto unido si hay id_area, texto heredado si no.
func scanMueble(row pgxScanner) (*entity.Mueble, error) {
	var (
		m        entity.Mueble
		value    decimal.NullDecimal
		areaID   *int64
		areaName *string
		areaText *string
	)
	err := row.Scan(
		&m.ID, &m.InventoryCode, &m.Category, &m.Description, &value, &m.AcquisitionDate, &m.AcquisitionForm,
		&m.Supplier, &m.Invoice, &m.LocationState, &m.LocationCity, &m.LocationNumber, &m.Condition, &m.Status,
		&areaID, &areaName, &areaText,
		&m.ResponsibleParty, &m.DeprecationDate, &m.DeprecationCause, &m.Custodian, &m.Image, &m.Origin,
	)
	if err != nil {
		return nil, err
	}
	if value.Valid {
		v := value.Decimal
		m.Value = &v
	}
	m.Area = normalizeArea(areaID, areaName, areaText)
	return &m, nil
}

func normalizeArea(id *int64, joined, legacy *string) *entity.AreaRef {
	name := ""
	switch {
	case joined != nil && strings.TrimSpace(*joined) != "":
		name = strings.TrimSpace(*joined)
	case legacy != nil:
		name = strings.TrimSpace(*legacy)
	}
	if id == nil && name == "" {
		return nil
	}
	return &entity.AreaRef{ID: id, Name: name}
}

// pgxScanner abstrae pgx.Row y pgx.Rows.
type pgxScanner interface {
	Scan(dest ...any) error
}
