package dashboard

// DemoText feeds the "load sample" button and gives first-time users a
// passage with enough rhythm variation to light up every panel.
const DemoText = "The ferry was late, which surprised nobody on the pier. " +
	"Gulls argued over a dropped sandwich while the harbourmaster pretended not to watch. " +
	"I counted waves. Forty-one. " +
	"Then the horn sounded twice, low and certain, and the whole queue shuffled forward as if pulled by a single string. " +
	"My grandmother used to say that ports collect impatience the way carpets collect sand. " +
	"She never explained it. " +
	"We boarded at noon, and the deck smelled of diesel, salt, and somebody's too-sweet coffee. " +
	"It rained before we cleared the breakwater."
