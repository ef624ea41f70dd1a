package quote

import "github.com/tu-usuario/quotation-pro/internal/domain/entity"

// Flujo de estados de la cotización:
//
//	draft → sent → {accepted, rejected}
//	accepted → sent  (devolver a enviada)
//	rejected → sent  (devolver a enviada)
//
// draft → sent es de una sola vía: no se vuelve a borrador.
var statusTransitions = map[string][]string{
	entity.QuotationStatusDraft:    {entity.QuotationStatusSent},
	entity.QuotationStatusSent:     {entity.QuotationStatusAccepted, entity.QuotationStatusRejected},
	entity.QuotationStatusAccepted: {entity.QuotationStatusSent},
	entity.QuotationStatusRejected: {entity.QuotationStatusSent},
}

// CanTransition indica si el cambio de estado from → to está permitido.
func CanTransition(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
