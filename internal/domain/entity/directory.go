package entity

import "strings"

// Director persona del directorio que puede figurar como responsable (usufinal).
type Director struct {
	ID       int64
	Name     string
	Position string // puesto
}

// Area área administrativa.
type Area struct {
	ID   int64
	Name string
}

// DirectorArea relación muchos a muchos entre directores y áreas.
type DirectorArea struct {
	DirectorID int64
	AreaID     int64
}

// Directory catálogos de referencia unidos en memoria.
type Directory struct {
	Directors []Director
	Areas     []Area
	Relations []DirectorArea
}

// DirectorByName busca un director por nombre (sin distinguir mayúsculas ni espacios extremos).
func (d Directory) DirectorByName(name string) (Director, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Director{}, false
	}
	for _, dir := range d.Directors {
		if strings.EqualFold(strings.TrimSpace(dir.Name), name) {
			return dir, true
		}
	}
	return Director{}, false
}

// AreaByID busca un área por ID.
func (d Directory) AreaByID(id int64) (Area, bool) {
	for _, a := range d.Areas {
		if a.ID == id {
			return a, true
		}
	}
	return Area{}, false
}

// AreasOf devuelve las áreas asignadas a un director.
func (d Directory) AreasOf(directorID int64) []Area {
	var out []Area
	for _, rel := range d.Relations {
		if rel.DirectorID != directorID {
			continue
		}
		if a, ok := d.AreaByID(rel.AreaID); ok {
			out = append(out, a)
		}
	}
	return out
}

// Manages indica si el director tiene asignada el área.
func (d Directory) Manages(directorID, areaID int64) bool {
	for _, rel := range d.Relations {
		if rel.DirectorID == directorID && rel.AreaID == areaID {
			return true
		}
	}
	return false
}
