package dashboard

// Company holds the static profile shown in the company panel.
type Company struct {
	Symbol  string
	Name    string
	Address string
	Phone   string
	Website string
	Summary string
	Logo    string
}

var companies = map[string]Company{
	"AAPL": {
		Symbol:  "AAPL",
		Name:    "Apple, Inc.",
		Address: "One Apple Park Way, Cupertino, CA 95014, United States",
		Phone:   "408-996-1010",
		Website: "http://www.apple.com",
		Summary: "Apple, Inc. engages in the design, manufacture, and sale of smartphones, personal computers, tablets, wearables and accessories, and other variety of related services.",
		Logo:    "logos/apple.png",
	},
	"TSLA": {
		Symbol:  "TSLA",
		Name:    "Tesla, Inc.",
		Address: "3500 Deer Creek Road, Palo Alto, CA 94304, United States",
		Phone:   "650-681-5000",
		Website: "http://www.tesla.com",
		Summary: "Tesla, Inc. engages in the design, development, manufacture, and sale of fully electric vehicles, energy generation and storage systems.",
		Logo:    "logos/tesla.png",
	},
	"FB": {
		Symbol:  "FB",
		Name:    "Facebook, Inc.",
		Address: "1601 Willow Road, Menlo Park, CA 94025, United States",
		Phone:   "650-543-4800",
		Website: "http://investor.fb.com",
		Summary: "Facebook, Inc. operates as a social networking company worldwide. Its products include Facebook, Instagram, Messenger, WhatsApp, and Oculus.",
		Logo:    "logos/fb.png",
	},
	"AMZN": {
		Symbol:  "AMZN",
		Name:    "Amazon, Inc.",
		Address: "410 Terry Avenue North, Seattle, WA 98109-5210, United States",
		Phone:   "206-266-1000",
		Website: "http://www.amazon.com",
		Summary: "Amazon.com, Inc. engages in the provision of online retail shopping services and, through AWS, global sales of compute, storage and database offerings.",
		Logo:    "logos/amzn.png",
	},
	"GOOG": {
		Symbol:  "GOOG",
		Name:    "Google, Inc.",
		Address: "1600 Amphitheatre Parkway, Mountain View, CA 94043, United States",
		Phone:   "650-253-0000",
		Website: "http://www.abc.xyz",
		Summary: "Alphabet, Inc. is a holding company. The Google segment includes its main Internet products such as ads, Android, Chrome, hardware, Google Cloud, Google Maps, Google Play, Search, and YouTube.",
		Logo:    "logos/goog.png",
	},
	"TWTR": {
		Symbol:  "TWTR",
		Name:    "Twitter, Inc.",
		Address: "1355 Market Street, Suite 900, San Francisco, CA 94103, United States",
		Phone:   "415-222-9670",
		Website: "http://www.twitter.com",
		Summary: "Twitter, Inc. is a global platform for public self-expression and conversation in real time.",
		Logo:    "logos/tw.png",
	},
	"NFLX": {
		Symbol:  "NFLX",
		Name:    "Netflix, Inc.",
		Address: "100 Winchester Circle, Los Gatos, CA 95032, United States",
		Phone:   "408-540-3700",
		Website: "http://www.netflix.com",
		Summary: "Netflix, Inc. operates as a streaming entertainment service company, providing subscription streaming of movies and television episodes over the Internet.",
		Logo:    "logos/nflx.png",
	},
}

// CompanyInfo returns the static profile for a symbol. Unknown symbols get a
// bare profile carrying just the symbol, so the panel still renders.
func CompanyInfo(symbol string) Company {
	if c, ok := companies[symbol]; ok {
		return c
	}
	return Company{Symbol: symbol, Name: symbol}
}
