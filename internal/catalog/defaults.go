package catalog

import "cmcreport/internal/domain"

// DefaultGuideKey is the guide shown when nothing else matches.
const DefaultGuideKey = "DEFAULT"

// DefaultGuides are served until the store provides its own version.
var DefaultGuides = map[string]string{
	"CAMBIO DE MONTO CASH (CMC)": `Cambio de Monto CASH (CMC)
Descripción:
Se usa para corregir errores relacionados con cobros en efectivo. Adjunta ticket y evidencia del cobro.
Pasos:
1) Verificar ticket.
2) Obtener captura de la transacción o fotografía del recibo.
3) Aplicar ajuste en Admin y registrar evidencia.`,
	"VIAJE REALIZADO": `Incidencia: Viaje Realizado
Descripción:
Se crea cuando el servicio fue prestado pero existen errores en el cobro/estado.
Pasos:
- Revisar historial del viaje.
- Verificar comunicaciones con el rider.
- Registrar evidencias: ticket, viaje admin, mapa.`,
	"VIAJE REALIZADO CASH": `Incidencia: Viaje Realizado (CASH)
Descripción:
Usada cuando el viaje fue pagado en efectivo y no queda registrado correctamente.
Pasos:
- Verificar comprobante/ticket del conductor.
- Validar monto recibido.
- Aplicar abono o ajuste si corresponde.`,
	"RECÁLCULO": `Recalculo (Incidencia)
Descripción:
Se realiza cuando hay diferencias entre amount admin y amount real o problemas con surge.
Campos a considerar:
- Amount Admin: costo según Admin.
- Amount Real: fare mostrado en Dispatcher.
- Surge Real y Surge Admin.
Usar calculadora para validar si aplica recalculo.`,
	"MOVIMIENTO CERO": `Incidencia: Movimiento Cero
Descripción:
Se tramita cuando se detecta que el conductor reportó un cobro en efectivo inexistente ($0).
Pasos:
- Revisar evidencia y conversación.
- Si procede, anular el movimiento y notificar al conductor.`,
	"VIAJE YUNO": `Viaje YUNO
Descripción:
Incidencia asociada a pagos a través de la pasarela YUNO. Verifica estado del cobro y conciliación.`,
	"ABONO CXC DISPUTA MAL LIBERADA": `Abono CXC - Disputa mal liberada
Descripción:
Uso cuando una disputa fue liberada erróneamente y produjo un abono inadecuado. Adjuntar evidencia.`,
	"ABONO CXC PAGO MÓVIL": `Abono CXC (Pago Móvil)
Descripción:
Incidencia para pagos móviles registrados incorrectamente. Requiere captura del pago, banco, teléfono y referencia.`,
	"CAMBIO DE MONTO CASH (CMC)_USUARIO": `Cambio de Monto CASH (USUARIO)
Descripción:
Asunto similar a CMC conductor pero desde perspectiva usuario. Adjuntar evidencia de pago y ticket.`,
	"RECÁLCULO_PANEL": `Guía del Panel de Recalculo
Esta guía es la guía exclusiva del panel top-level de recalculo. Solo administradores pueden editarla.
Uso:
- Revisar la calculadora.
- Revisar las evidencias y mapa.
- Decidir si aplica recalculo y el monto a ajustar.`,
	DefaultGuideKey: `No hay guía específica para esta incidencia. Si eres administrador, puedes agregar una guía detallada para este caso.`,
}

// DefaultCategories are the incident types offered before any category has
// been stored.
var DefaultCategories = []domain.Category{
	{ID: "cambio-de-monto-cash", Name: "CAMBIO DE MONTO CASH (CMC)", Slug: "cambio-de-monto-cash", Group: "CMC", IsActive: true, Order: 1,
		Items: []string{"Ticket", "Viaje Admin", "Recibo"}},
	{ID: "viaje-realizado", Name: "VIAJE REALIZADO", Slug: "viaje-realizado", Group: "CMC", IsActive: true, Order: 2,
		Items: []string{"Ticket", "Viaje Admin", "Mapa"}},
	{ID: "viaje-realizado-cash", Name: "VIAJE REALIZADO CASH", Slug: "viaje-realizado-cash", Group: "CMC", IsActive: true, Order: 3,
		Items: []string{"Ticket", "Viaje Admin", "Comprobante"}},
	{ID: "recalculo", Name: "RECÁLCULO", Slug: "recalculo", Group: "RECALCULO", IsActive: true, Order: 4,
		Items: []string{"Ticket", "Viaje Admin", "Dispatcher", "Mapa"}},
	{ID: "movimiento-cero", Name: "MOVIMIENTO CERO", Slug: "movimiento-cero", Group: "CMC", IsActive: true, Order: 5,
		Items: []string{"Ticket", "Conversación"}},
	{ID: "viaje-uno", Name: "VIAJE YUNO", Slug: "viaje-uno", Group: "CMC", IsActive: true, Order: 6,
		Items: []string{"Ticket", "Estado del cobro"}},
	{ID: "abono-cxc-disputa-mal-liberada", Name: "ABONO CXC DISPUTA MAL LIBERADA", Slug: "abono-cxc-disputa-mal-liberada", Group: "CXC", IsActive: true, Order: 7,
		Items: []string{"Ticket", "Disputa"}},
	{ID: "abono-cxc-pago-movil", Name: "ABONO CXC PAGO MÓVIL", Slug: "abono-cxc-pago-movil", Group: "CXC", IsActive: true, Order: 8,
		Items: []string{"Ticket", "Captura del pago"}, Warning: "Incluir banco, teléfono y referencia del pago."},
}
