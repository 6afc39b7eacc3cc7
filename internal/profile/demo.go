package profile

import (
	"strings"

	"github.com/jonathan/drip-agent/internal/types"
)

// demoEntry pairs handle keywords with a canned profile, evaluated in order.
type demoEntry struct {
	keywords []string
	profile  types.Profile
}

var demoProfiles = []demoEntry{
	{
		keywords: []string{"founder", "ceo", "she", "her"},
		profile: types.Profile{
			Bio:       "Founder & CEO. Building the future of consumer fintech. She/her. Angel investor.",
			Followers: 45200,
			Following: 612,
			Posts: []string{
				"Closed our Series A today. Grateful for the team that got us here.",
				"Fundraising tip: the best pitch is a working product.",
				"Wore my lucky blazer to the board meeting. It delivered again.",
				"Mentoring two first-time founders this quarter. Pay it forward.",
				"Red lipstick and a term sheet. Big day energy.",
				"Hiring is the hardest thing I do. Culture compounds.",
				"Quarterly planning with a matcha in hand. Q3 is going to be big.",
				"Women who build, keep building. The room changes when you stay in it.",
			},
		},
	},
	{
		keywords: []string{"dev", "eng", "code", "hacker"},
		profile: types.Profile{
			Bio:       "Staff Engineer. Rust by day, mechanical keyboards by night. Opinions are my compiler's.",
			Followers: 8210,
			Following: 430,
			Posts: []string{
				"Spent four hours debugging. It was a typo. It's always a typo.",
				"Monoliths are underrated and I'm tired of pretending otherwise.",
				"New keyboard day. The clack is immaculate.",
				"Code review is an act of love. Fight me.",
				"Dark mode everything. My terminal, my IDE, my soul.",
				"Reading old code I wrote is an exercise in humility.",
				"Minimal desk setup, maximal throughput.",
				"Coffee count today: 4. Productivity: unmeasurable.",
				"The best abstraction is the one you didn't write.",
				"Shipped on a Friday. Living dangerously.",
			},
		},
	},
	{
		keywords: []string{"design", "art", "creative", "studio"},
		profile: types.Profile{
			Bio:       "Designer & sometimes artist. Chasing good light and better typography.",
			Followers: 12400,
			Following: 980,
			Posts: []string{
				"Kerning is a love language.",
				"Mood board for the new project: concrete, linen, rust tones.",
				"Galleries on weekdays hit different. No crowds, just work.",
				"Unpopular opinion: beige is a whole personality and that's fine.",
				"Sketchbook first, Figma second. Always.",
				"Found the perfect oat flat white near the studio.",
				"Color is the easiest thing to get wrong and the hardest to get right.",
				"Film photos from the weekend came back. Grain forever.",
			},
		},
	},
	{
		keywords: []string{"fit", "gym", "run", "coach"},
		profile: types.Profile{
			Bio:       "Strength coach. 5am club. Progress over perfection.",
			Followers: 21800,
			Following: 310,
			Posts: []string{
				"Legs day. Walking optional for the rest of the week.",
				"Your warmup is not optional. Neither is your sleep.",
				"PR'd my deadlift this morning. Still buzzing.",
				"Meal prep Sunday. Future me says thanks.",
				"Run slow to race fast. Trust the process.",
				"Rest days are training days for discipline.",
			},
		},
	},
}

// defaultDemoProfile matches no keyword set: a generic builder/founder.
var defaultDemoProfile = types.Profile{
	Bio:       "Builder. Hacker. Coffee enthusiast. Shipping code and taking names.",
	Followers: 5420,
	Following: 892,
	Posts: []string{
		"Just shipped a new feature at 3am. Sleep is for the weak.",
		"Hot take: TypeScript > JavaScript. Fight me.",
		"The future is agents. Everything will be automated.",
		"Currently obsessed with minimalist design and black coffee.",
		"Why do meetings exist when we have Slack?",
		"Building in public is the way. Transparency wins.",
		"AI is not going to take your job. Someone using AI will.",
		"Startup life: 80 hour weeks but at least I'm my own boss lol",
		"Clean code is a love language.",
		"Just discovered a new coffee shop. Productivity +100%",
	},
}

// DemoProfile returns a canned profile for a handle, selected by handle
// keywords. Used when scraping fails so the pipeline still has something to
// analyze.
func DemoProfile(handle string) *types.Profile {
	handle = CleanHandle(handle)
	lower := strings.ToLower(handle)

	for _, entry := range demoProfiles {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				p := entry.profile
				p.Handle = handle
				return &p
			}
		}
	}

	p := defaultDemoProfile
	p.Handle = handle
	return &p
}
