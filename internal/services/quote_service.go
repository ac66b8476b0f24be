package services

import (
	"time"
)

// quoteDayLayout is the date rendering hashed to pick a quote.
const quoteDayLayout = "Mon Jan 02 2006"

var quotes = []Quote{
	{Text: "We suffer more often in imagination than in reality.", Author: "Seneca"},
	{Text: "The impediment to action advances action. What stands in the way becomes the way.", Author: "Marcus Aurelius"},
	{Text: "He who has a why to live can bear almost any how.", Author: "Friedrich Nietzsche"},
	{Text: "Waste no more time arguing about what a good man should be. Be one.", Author: "Marcus Aurelius"},
	{Text: "It is not the man who has too little, but the man who craves more, that is poor.", Author: "Seneca"},
	{Text: "The best revenge is not to be like your enemy.", Author: "Marcus Aurelius"},
	{Text: "Accept the things to which fate binds you, and love the people with whom fate brings you together, but do so with all your heart.", Author: "Marcus Aurelius"},
	{Text: "If you don't know where you are sailing, no wind is favorable.", Author: "Seneca"},
	{Text: "Man is not worried by real problems so much as by his imagined anxieties about real problems.", Author: "Epictetus"},
	{Text: "First say to yourself what you would be; and then do what you have to do.", Author: "Epictetus"},
	{Text: "Luck is what happens when preparation meets opportunity.", Author: "Seneca"},
	{Text: "Discipline is the bridge between goals and accomplishment.", Author: "Jim Rohn"},
	{Text: "Success is simple. Do what's right, the right way, at the right time.", Author: "Arnold H. Glasow"},
	{Text: "Action is the foundational key to all success.", Author: "Pablo Picasso"},
	{Text: "I never dreamt of success. I worked for it.", Author: "Estée Lauder"},
	{Text: "Don't count the days, make the days count.", Author: "Muhammad Ali"},
	{Text: "The glow of one warm thought is to me worth more than money.", Author: "Thomas Jefferson"},
	{Text: "Your time is limited, so don't waste it living someone else's life.", Author: "Steve Jobs"},
	{Text: "The way to get started is to quit talking and begin doing.", Author: "Walt Disney"},
	{Text: "Everything you've ever wanted is on the other side of fear.", Author: "George Addair"},
	{Text: "Small deeds done are better than great deeds planned.", Author: "Peter Marshall"},
	{Text: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{Text: "Don't watch the clock; do what it does. Keep going.", Author: "Sam Levenson"},
	{Text: "A year from now you will wish you had started today.", Author: "Karen Lamb"},
	{Text: "Make each day your masterpiece.", Author: "John Wooden"},
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Text: "Act as if what you do makes a difference. It does.", Author: "William James"},
	{Text: "The only limit to our realization of tomorrow will be our doubts of today.", Author: "Franklin D. Roosevelt"},
	{Text: "Do not wait; the time will never be 'just right'.", Author: "Napoleon Hill"},
	{Text: "What we achieve inwardly will change outer reality.", Author: "Plutarch"},
}

type quoteServiceImpl struct{}

// NewQuoteService creates a new QuoteService instance
func NewQuoteService() QuoteService {
	return quoteServiceImpl{}
}

// QuoteOfTheDay returns the same quote for every call on the same calendar day.
func (quoteServiceImpl) QuoteOfTheDay(day time.Time) Quote {
	return quotes[quoteIndex(day.Format(quoteDayLayout), len(quotes))]
}

// quoteIndex hashes s with h = c + (int32(h)<<5) - h, the shift wrapping at
// 32 bits, and reduces |h| modulo n.
func quoteIndex(s string, n int) int {
	var hash int64
	for _, c := range s {
		hash = int64(c) + int64(int32(hash)<<5) - hash
	}
	if hash < 0 {
		hash = -hash
	}
	return int(hash % int64(n))
}
