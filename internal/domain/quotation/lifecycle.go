package quotation

import (
	"errors"
	"fmt"
)

// Estados del documento de cotización.
const (
	StatusDraft     = "DRAFT"     // editable, sin PDF
	StatusGenerated = "GENERATED" // PDF generado a partir de los totales vigentes
	StatusPersisted = "PERSISTED" // PDF subido al almacenamiento
)

// Eventos que mueven el ciclo de vida.
const (
	EventEdit     = "edit"
	EventGenerate = "generate"
	EventSave     = "save"
)

var (
	// ErrInvalidTransition el evento no aplica al estado actual.
	ErrInvalidTransition = errors.New("transición de estado inválida")
	// ErrLastItem una cotización debe conservar al menos una línea.
	ErrLastItem = errors.New("la cotización debe tener al menos una línea")
)

// Transition DRAFT → GENERATED → PERSISTED. Regenerar y volver a guardar está permitido;
// editar devuelve el documento a DRAFT. Guardar exige un PDF generado.
func Transition(current, event string) (string, error) {
	switch event {
	case EventEdit:
		switch current {
		case StatusDraft, StatusGenerated, StatusPersisted:
			return StatusDraft, nil
		}
	case EventGenerate:
		switch current {
		case StatusDraft, StatusGenerated, StatusPersisted:
			return StatusGenerated, nil
		}
	case EventSave:
		switch current {
		case StatusGenerated, StatusPersisted:
			return StatusPersisted, nil
		}
	}
	return current, fmt.Errorf("%w: %s desde %s", ErrInvalidTransition, event, current)
}

// RemoveItem quita la línea i. Rechaza dejar la cotización sin líneas.
func RemoveItem(items []LineItem, i int) ([]LineItem, error) {
	if i < 0 || i >= len(items) {
		return items, fmt.Errorf("línea %d fuera de rango", i)
	}
	if len(items) <= 1 {
		return items, ErrLastItem
	}
	out := make([]LineItem, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...), nil
}
