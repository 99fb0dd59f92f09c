package consts

const (
	HeaderAccept      = "Accept"
	HeaderContentType = "Content-Type"

	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeXML  = "application/xml"
)

// Base URLs.
const (
	// Netaxept production environment.
	ProductionBaseURL = "https://epayment.nets.eu"
	// Netaxept test environment.
	TestBaseURL = "https://test.epayment.nets.eu"
)

// Endpoint paths.
const (
	RegisterPath = "/Netaxept/Register.aspx"
	ProcessPath  = "/Netaxept/Process.aspx"
	QueryPath    = "/Netaxept/Query.aspx"
)

// Hosted terminal paths, relative to the environment base URL.
const (
	TerminalPath       = "/Terminal/default.aspx"
	TerminalMobilePath = "/Terminal/mobile/default.aspx"
)

// Operation is a Process endpoint operation.
//
// Values are taken from the Netaxept documentation.
type Operation string

const (
	OperationAuth    Operation = "AUTH"
	OperationSale    Operation = "SALE"
	OperationCapture Operation = "CAPTURE"
	OperationCredit  Operation = "CREDIT"
	OperationAnnul   Operation = "ANNUL"
)

// DefaultLanguage is the terminal language used when none is set.
const DefaultLanguage = "en_GB"

// Maximum byte lengths for Register call fields. Longer values are
// truncated, not rejected.
const (
	MaxTransactionIDLength    = 32
	MaxCustomerNameLength     = 64
	MaxCustomerEmailLength    = 128
	MaxCustomerAddressLength  = 64
	MaxCustomerPostcodeLength = 16
	MaxCustomerTownLength     = 16
	MaxOrderDescriptionLength = 1500
	MaxRedirectURLLength      = 256
)
