package erp

// Tone is the visual accent used for a status badge.
type Tone string

// Status tones.
const (
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
	ToneInfo    Tone = "info"
	ToneNeutral Tone = "neutral"
)

var statusTones = map[string]map[string]Tone{
	EntityCustomers: {
		CustomerActive:   ToneSuccess,
		CustomerPending:  ToneWarning,
		CustomerInactive: ToneNeutral,
	},
	EntityEmployees: {
		EmployeeActive:     ToneSuccess,
		EmployeeOnLeave:    ToneWarning,
		EmployeeTerminated: ToneDanger,
	},
	EntityProducts: {
		ProductInStock:    ToneSuccess,
		ProductLowStock:   ToneWarning,
		ProductOutOfStock: ToneDanger,
	},
	EntityOrders: {
		OrderPending:    ToneWarning,
		OrderProcessing: ToneInfo,
		OrderShipped:    ToneInfo,
		OrderCompleted:  ToneSuccess,
		OrderCancelled:  ToneDanger,
	},
}

// ToneFor maps an entity status to its badge tone. Unknown pairs are neutral.
func ToneFor(entity, status string) Tone {
	if tone, ok := statusTones[entity][status]; ok {
		return tone
	}
	return ToneNeutral
}

// StatusLabel turns a status code such as "on_leave" into "On Leave".
func StatusLabel(status string) string {
	out := make([]byte, 0, len(status))
	upper := true
	for i := 0; i < len(status); i++ {
		c := status[i]
		if c == '_' || c == '-' {
			out = append(out, ' ')
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		out = append(out, c)
	}
	return string(out)
}
