package access

// Sistemas del dashboard. Cada uno agrupa las rutas bajo su prefijo.
const (
	SystemO2D         = "o2d"
	SystemBatchCode   = "batchcode"
	SystemLeadToOrder = "lead-to-order"
)

// RootPath es el dashboard compartido (multiplexado por ?tab=<sistema>).
const RootPath = "/"

// LoginPath destino cuando no hay sesión.
const LoginPath = "/login"

// systemRoots rutas raíz de cada sistema; la regla de exclusividad de páginas no aplica sobre ellas.
var systemRoots = map[string]bool{
	RootPath:                true,
	"/" + SystemO2D:         true,
	"/" + SystemBatchCode:   true,
	"/" + SystemLeadToOrder: true,
}

// systemPriority orden fijo para elegir la pestaña de aterrizaje.
var systemPriority = []string{SystemO2D, SystemLeadToOrder, SystemBatchCode}

// knownSystems conjunto de sistemas reconocidos.
var knownSystems = map[string]bool{
	SystemO2D:         true,
	SystemBatchCode:   true,
	SystemLeadToOrder: true,
}

// IsKnownSystem informa si name (ya normalizado) es uno de los sistemas del dashboard.
func IsKnownSystem(name string) bool {
	return knownSystems[name]
}

// Page entrada de la tabla estática nombre de página → ruta.
type Page struct {
	Name   string `json:"name"`
	Route  string `json:"route"`
	System string `json:"system,omitempty"`
}

// DefaultPages tabla estática de páginas del dashboard. Es configuración, no se calcula.
var DefaultPages = []Page{
	{Name: "Dashboard", Route: RootPath},

	// Order to delivery
	{Name: "Orders", Route: "/o2d/orders", System: SystemO2D},
	{Name: "Gate Entry", Route: "/o2d/gate-entry", System: SystemO2D},
	{Name: "First Weight", Route: "/o2d/first-weight", System: SystemO2D},
	{Name: "Load Vehicle", Route: "/o2d/load-vehicle", System: SystemO2D},
	{Name: "Second Weight", Route: "/o2d/second-weight", System: SystemO2D},
	{Name: "Generate Invoice", Route: "/o2d/generate-invoice", System: SystemO2D},
	{Name: "Gate Out", Route: "/o2d/gate-out", System: SystemO2D},
	{Name: "Payment", Route: "/o2d/payment", System: SystemO2D},
	{Name: "Customers", Route: "/o2d/customers", System: SystemO2D},

	// Batch code
	{Name: "SMS Register", Route: "/batchcode/sms-register", System: SystemBatchCode},
	{Name: "Hot Coil", Route: "/batchcode/hot-coil", System: SystemBatchCode},
	{Name: "Recoiler", Route: "/batchcode/recoiler", System: SystemBatchCode},
	{Name: "Pipe Mill", Route: "/batchcode/pipe-mill", System: SystemBatchCode},
	{Name: "Laddle Checklist", Route: "/batchcode/laddle-checklist", System: SystemBatchCode},
	{Name: "Tundish Checklist", Route: "/batchcode/tundish-checklist", System: SystemBatchCode},
	{Name: "QC Lab Samples", Route: "/batchcode/qc-lab-samples", System: SystemBatchCode},

	// Lead to order
	{Name: "Leads", Route: "/lead-to-order/leads", System: SystemLeadToOrder},
	{Name: "Follow Up", Route: "/lead-to-order/follow-up", System: SystemLeadToOrder},
	{Name: "Call Tracker", Route: "/lead-to-order/call-tracker", System: SystemLeadToOrder},
	{Name: "Enquiry", Route: "/lead-to-order/enquiry", System: SystemLeadToOrder},
	{Name: "Quotation", Route: "/lead-to-order/quotation", System: SystemLeadToOrder},
	{Name: "Quotation History", Route: "/lead-to-order/quotation-history", System: SystemLeadToOrder},
}

// QuotationPage ruta cliente que respalda la API de cotizaciones.
const QuotationPage = "/lead-to-order/quotation"

// Systems sistemas conocidos en orden de prioridad.
func Systems() []string {
	return append([]string(nil), systemPriority...)
}
