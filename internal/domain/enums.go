package domain

// FlowState is the position of a session in the agreement form flow.
type FlowState string

const (
	FlowStateNameEntry        FlowState = "name_entry"
	FlowStateAddressPending   FlowState = "address_pending"
	FlowStateAddressConfirmed FlowState = "address_confirmed"
	FlowStateReady            FlowState = "ready"
)

// AddressSource records where the current address value came from.
type AddressSource string

const (
	AddressSourceNone   AddressSource = ""
	AddressSourceLookup AddressSource = "lookup"
	AddressSourceManual AddressSource = "manual"
)

// AddressMode selects whether entering a company name triggers a lookup.
type AddressMode string

const (
	AddressModeAuto   AddressMode = "auto"
	AddressModeManual AddressMode = "manual"
)

// ValidAddressModes is the set of accepted address modes.
var ValidAddressModes = map[AddressMode]bool{
	AddressModeAuto:   true,
	AddressModeManual: true,
}

// DocxContentType is the MIME type served for generated agreements.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Placeholders carried by the stock agreement template.
const (
	DefaultNamePlaceholder    = "[千寻智能(杭州)科技有限公司]"
	DefaultAddressPlaceholder = "[浙江省杭州市萧山区宁围街道利一路188号天人大厦浙大研究院数字经济孵化器4层401室-38]"
)
