package claims

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"homeswerv/internal/domain"
)

// State is the terminal state of a claims list render.
type State string

const (
	StateLoading State = "loading"
	StateError   State = "error"
	StateEmpty   State = "empty"
	StateReady   State = "ready"
)

const (
	ErrorMessage          = "Unable to load guarantee claims. Please try again later."
	EmptyHomeownerMessage = "You haven't submitted any guarantee claims yet."
	EmptyProviderMessage  = "No guarantee claims have been filed for your projects."
)

// Badge is the status pill shown on a claim card.
type Badge struct {
	Label string
	Tone  string
	Icon  string
	Known bool
}

// Card is one claim mapped for display.
type Card struct {
	ID                string
	Status            domain.ClaimStatus
	Badge             Badge
	Amount            string
	Reason            string
	FiledOn           string
	ProjectTitle      string
	CounterpartyLabel string
	CounterpartyName  string
	ResolutionNotes   string
	ResolvedOn        string
}

type View struct {
	Role    domain.Role
	State   State
	Message string
	Cards   []Card
}

func LoadingView(role domain.Role) View {
	return View{Role: role, State: StateLoading}
}

func errorView(role domain.Role) View {
	return View{Role: role, State: StateError, Message: ErrorMessage}
}

func emptyView(role domain.Role) View {
	return View{Role: role, State: StateEmpty, Message: EmptyMessage(role)}
}

// EmptyMessage is the role-specific text shown when no claims exist.
func EmptyMessage(role domain.Role) string {
	if role == domain.RoleProvider {
		return EmptyProviderMessage
	}
	return EmptyHomeownerMessage
}

// BadgeFor maps a status to its badge. Every value of domain.AllClaimStatuses
// has its own case; anything else gets the neutral fallback.
func BadgeFor(status domain.ClaimStatus) Badge {
	switch status {
	case domain.ClaimPending:
		return Badge{Label: "Pending", Tone: "warning", Icon: "clock", Known: true}
	case domain.ClaimUnderReview:
		return Badge{Label: "Under Review", Tone: "info", Icon: "search", Known: true}
	case domain.ClaimApproved:
		return Badge{Label: "Approved", Tone: "success", Icon: "check-circle", Known: true}
	case domain.ClaimRejected:
		return Badge{Label: "Rejected", Tone: "danger", Icon: "x-circle", Known: true}
	case domain.ClaimResolved:
		return Badge{Label: "Resolved", Tone: "neutral", Icon: "shield-check", Known: true}
	}
	label := "Unknown"
	if status != "" {
		label = humanize(string(status))
	}
	return Badge{Label: label, Tone: "muted", Icon: "help-circle"}
}

var printer = message.NewPrinter(language.AmericanEnglish)

const dateLayout = "Jan 2, 2006"

func toCard(c domain.GuaranteeClaim, role domain.Role) Card {
	card := Card{
		ID:           c.ID,
		Status:       c.Status,
		Badge:        BadgeFor(c.Status),
		Amount:       printer.Sprintf("$%.2f", c.ClaimAmount),
		Reason:       fallback(c.ClaimReason, "No reason provided"),
		FiledOn:      formatDate(&c.CreatedAt),
		ProjectTitle: fallback(c.Project.Title, "Untitled project"),
	}
	if role == domain.RoleProvider {
		card.CounterpartyLabel = "Homeowner"
		card.CounterpartyName = firstOf("Unknown homeowner", c.Homeowner.FullName, c.Homeowner.Email)
	} else {
		card.CounterpartyLabel = "Provider"
		card.CounterpartyName = firstOf("Unknown provider", c.Provider.BusinessName, c.Provider.FullName)
	}
	if c.ResolutionNotes != nil {
		card.ResolutionNotes = *c.ResolutionNotes
	}
	if c.ResolutionDate != nil {
		card.ResolvedOn = formatDate(c.ResolutionDate)
	}
	return card
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "—"
	}
	return t.Format(dateLayout)
}

func fallback(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func firstOf(def string, candidates ...*string) string {
	for _, c := range candidates {
		if c != nil && strings.TrimSpace(*c) != "" {
			return *c
		}
	}
	return def
}

func humanize(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
