package search

import "github.com/jhoicas/Resguardos-api/internal/domain/entity"

// Index vectores planos de valores por campo, para barridos rápidos de subcadenas.
// Se reconstruye cada vez que cambia la colección de origen.
type Index struct {
	fields []entity.FieldType
	values map[entity.FieldType][]string
}

// BuildIndex construye el índice para los campos dados. Conserva el orden de los registros
// y omite valores nulos o vacíos.
func BuildIndex(records []*entity.Mueble, fields []entity.FieldType) *Index {
	idx := &Index{
		fields: append([]entity.FieldType(nil), fields...),
		values: make(map[entity.FieldType][]string, len(fields)),
	}
	for _, f := range fields {
		vec := make([]string, 0, len(records))
		for _, m := range records {
			if v, ok := FieldValue(m, f); ok && v != "" {
				vec = append(vec, v)
			}
		}
		idx.values[f] = vec
	}
	return idx
}

// Fields devuelve los campos indexados en orden de prioridad.
func (i *Index) Fields() []entity.FieldType {
	return i.fields
}

// Values devuelve el vector de valores de un campo (nil si no está indexado).
func (i *Index) Values(t entity.FieldType) []string {
	if i == nil {
		return nil
	}
	return i.values[t]
}
