package pages

// Static marketing content. Templates in the http adapter render these values;
// nothing here touches the database.

type Step struct {
	Number int
	Title  string
	Text   string
}

type Feature struct {
	Icon  string
	Title string
	Text  string
}

type Plan struct {
	Name        string
	Audience    string
	Price       string
	Period      string
	Description string
	Features    []string
	CTA         string
	CTAHref     string
	Highlighted bool
}

type Testimonial struct {
	Quote    string
	Author   string
	Location string
	Role     string
	Rating   int
}

type Link struct {
	Title string
	Href  string
}

type LinkGroup struct {
	Title string
	Links []Link
}

type Home struct {
	Headline     string
	Subheadline  string
	Steps        []Step
	Highlights   []Feature
	Testimonials []Testimonial
}

func HomeContent() Home {
	return Home{
		Headline:    "Home projects, handled with confidence",
		Subheadline: "Home Swerv matches homeowners with vetted local providers and backs every completed project with the Swerv Satisfaction Guarantee.",
		Steps: []Step{
			{Number: 1, Title: "Describe your project", Text: "Tell us what needs doing, your budget and your timeline."},
			{Number: 2, Title: "Compare vetted providers", Text: "Review licensed, insured pros with verified ratings."},
			{Number: 3, Title: "Track progress", Text: "Follow every stage of the job from planning to completion on your project board."},
			{Number: 4, Title: "Covered by our guarantee", Text: "If something is not right, file a guarantee claim and we will step in."},
		},
		Highlights:   HomeownerFeatures()[:3],
		Testimonials: TestimonialsContent()[:2],
	}
}

func HomeownerFeatures() []Feature {
	return []Feature{
		{Icon: "shield-check", Title: "Satisfaction guarantee", Text: "Completed projects are covered; claims are reviewed within two business days."},
		{Icon: "badge-check", Title: "Vetted providers", Text: "Every provider passes license, insurance and background checks."},
		{Icon: "layout-dashboard", Title: "Project board", Text: "See each project move from planning to completed in one place."},
		{Icon: "message-square", Title: "Direct messaging", Text: "Keep quotes, questions and photos in a single thread per project."},
		{Icon: "receipt", Title: "Transparent pricing", Text: "Quotes are itemized before work begins, with no hidden fees."},
		{Icon: "star", Title: "Verified reviews", Text: "Only homeowners with completed projects can leave a review."},
	}
}

func ProviderFeatures() []Feature {
	return []Feature{
		{Icon: "users", Title: "Qualified leads", Text: "Receive project requests that match your trade and service area."},
		{Icon: "calendar", Title: "Scheduling", Text: "Plan crews and start dates from the same board your customers see."},
		{Icon: "trending-up", Title: "Reputation tools", Text: "Showcase verified reviews and completed-project galleries."},
		{Icon: "shield", Title: "Guarantee support", Text: "Claims are mediated by Home Swerv so disputes stay fair and documented."},
		{Icon: "credit-card", Title: "Fast payouts", Text: "Get paid on milestone completion, straight to your account."},
	}
}

func Plans() []Plan {
	return []Plan{
		{
			Name:        "Homeowner",
			Audience:    "homeowner",
			Price:       "$0",
			Period:      "forever",
			Description: "Everything you need to plan, hire and track home projects.",
			Features:    []string{"Unlimited project requests", "Project board", "Satisfaction guarantee", "Verified reviews"},
			CTA:         "Get started",
			CTAHref:     "/signup?type=homeowner",
		},
		{
			Name:        "Provider Basic",
			Audience:    "provider",
			Price:       "$49",
			Period:      "per month",
			Description: "For independent pros getting started on Home Swerv.",
			Features:    []string{"Up to 10 leads per month", "Business profile", "Project board"},
			CTA:         "Start free trial",
			CTAHref:     "/signup?type=provider&plan=basic",
		},
		{
			Name:        "Provider Pro",
			Audience:    "provider",
			Price:       "$99",
			Period:      "per month",
			Description: "For growing businesses that want more leads and visibility.",
			Features:    []string{"Unlimited leads", "Priority placement", "Team accounts", "Guarantee support"},
			CTA:         "Start free trial",
			CTAHref:     "/signup?type=provider&plan=pro",
			Highlighted: true,
		},
		{
			Name:        "Provider Premium",
			Audience:    "provider",
			Price:       "$199",
			Period:      "per month",
			Description: "For multi-crew companies covering several service areas.",
			Features:    []string{"Everything in Pro", "Multiple service areas", "Dedicated account manager", "API access"},
			CTA:         "Contact sales",
			CTAHref:     "/#contact",
		},
	}
}

func TestimonialsContent() []Testimonial {
	return []Testimonial{
		{Quote: "Our kitchen remodel finished on schedule and the board kept us informed every step of the way.", Author: "Maria G.", Location: "Austin, TX", Role: "Homeowner", Rating: 5},
		{Quote: "When a gutter seam leaked, the guarantee claim was resolved in three days.", Author: "James T.", Location: "Denver, CO", Role: "Homeowner", Rating: 5},
		{Quote: "Home Swerv doubled our booked jobs in the first quarter.", Author: "Alvarez Plumbing", Location: "Phoenix, AZ", Role: "Provider", Rating: 5},
		{Quote: "Clear quotes, reliable pros, and no surprises on the final invoice.", Author: "Priya S.", Location: "Raleigh, NC", Role: "Homeowner", Rating: 4},
	}
}

// SiteMap groups every public route for the HTML site map. The XML sitemap
// adds published CMS pages to the same routes.
func SiteMap() []LinkGroup {
	return []LinkGroup{
		{Title: "Home Swerv", Links: []Link{
			{Title: "Home", Href: "/"},
			{Title: "Pricing", Href: "/pricing"},
			{Title: "Testimonials", Href: "/testimonials"},
			{Title: "Site map", Href: "/sitemap"},
		}},
		{Title: "Features", Links: []Link{
			{Title: "For homeowners", Href: "/features"},
			{Title: "For providers", Href: "/features/providers"},
		}},
		{Title: "Dashboard", Links: []Link{
			{Title: "Project board", Href: "/dashboard/projects"},
			{Title: "Guarantee claims", Href: "/dashboard/claims"},
		}},
	}
}

// PublicPaths lists the marketing routes that belong in the XML sitemap.
func PublicPaths() []string {
	return []string{"/", "/pricing", "/features", "/features/providers", "/testimonials", "/sitemap"}
}
