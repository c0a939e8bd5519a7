package tracker

import "cloud.google.com/go/civil"

// Quote is a short inspirational quote.
type Quote struct {
	Text   string
	Author string
}

var quotes = []Quote{
	{"Discipline is the bridge between goals and accomplishment.", "Jim Rohn"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"It does not matter how slowly you go as long as you do not stop.", "Confucius"},
	{"Strength does not come from winning. Your struggles develop your strengths.", "Arnold Schwarzenegger"},
	{"We are what we repeatedly do. Excellence, then, is not an act, but a habit.", "Aristotle"},
	{"The secret of getting ahead is getting started.", "Mark Twain"},
	{"Success is the sum of small efforts, repeated day in and day out.", "Robert Collier"},
	{"Willpower is a muscle. The more you use it, the stronger it gets.", "Unknown"},
	{"You will never always be motivated. You have to learn to be disciplined.", "Unknown"},
	{"The pain of discipline is nothing like the pain of disappointment.", "Justin Langer"},
	{"Small daily improvements over time lead to stunning results.", "Robin Sharma"},
	{"Don't count the days, make the days count.", "Muhammad Ali"},
}

var quoteEpoch = civil.Date{Year: 2000, Month: 1, Day: 1}

// QuoteOfTheDay picks a quote that stays the same for the whole day.
func QuoteOfTheDay(d civil.Date) Quote {
	i := d.DaysSince(quoteEpoch) % len(quotes)
	if i < 0 {
		i += len(quotes)
	}
	return quotes[i]
}
