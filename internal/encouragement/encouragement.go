// Package encouragement holds the zero-guilt copy shown after check-ins.
package encouragement

import "math/rand/v2"

var OnComplete = []string{
	"You did it! Every small step fills a page in your story ✨",
	"Look at you go! Your diary is proud of you 📖",
	"Another day, another page written. Beautiful 🖋️",
	"You showed up today, and that's what matters most 🌟",
	"Consistency isn't perfection, it's showing up. You nailed it 💛",
	"Your future self will thank you for this page 📜",
	"Small wins stack up. You're building something wonderful 🧱",
	"That ink is drying on another great day 🖊️",
	"One more day of proof that you can do hard things 🔥",
	"The best habit is the one you actually do. Well done 💪",
}

var Partial = []string{
	"Some progress is still progress. Proud of you 🌱",
	"Even a few drops of ink fill the page over time ✒️",
	"Did a little? That still counts. Always 💛",
	"Partial credit is full credit in this diary 📖",
	"Starting is the hardest part, and you started 🌅",
	"Not every page needs to be full. Some are beautiful with just a few words ✨",
	"You moved the needle today. That matters 📈",
	"A shorter walk is still a walk. A shorter read is still a read 🚶📚",
}

var WelcomeBack = []string{
	"Welcome back! Your diary missed you 📖",
	"Hey! Ready to pick up where you left off? ✨",
	"Good to see you! No guilt here, just fresh pages waiting 🌿",
	"You're here, and that's the first win of the day 🌟",
	"Welcome back to your cozy corner 🕯️",
	"Fresh page, fresh start. Let's go 📝",
}

var JournalPrompts = []string{
	"One thing I'm grateful for today...",
	"The best moment of my day was...",
	"Right now I'm feeling...",
	"Something that made me smile today...",
	"One thing I want to remember about today...",
	"I'm proud of myself for...",
	"If I could describe today in one word...",
	"Something I learned today...",
	"A small win I had today...",
	"What I need to hear right now is...",
	"The highlight of my day...",
	"Something I'm looking forward to...",
}

// Picker chooses messages. A nil Intn uses math/rand/v2.
type Picker struct {
	Intn func(n int) int
}

// Pick returns a random message from pool, or "" when pool is empty.
func (p Picker) Pick(pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	intn := rand.IntN
	if p.Intn != nil {
		intn = p.Intn
	}
	return pool[intn(len(pool))]
}

// ForPercentage picks a completion message for a daily percentage:
// complete at 100, partial above 0, nothing at 0.
func (p Picker) ForPercentage(pct int) string {
	switch {
	case pct >= 100:
		return p.Pick(OnComplete)
	case pct > 0:
		return p.Pick(Partial)
	}
	return ""
}
