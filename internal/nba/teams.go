package nba

import "github.com/josephoneill/basketball-bot-telegram/internal/resolve"

// teamDirectory is the static team name directory. The league's team set
// changes rarely enough that shipping it beats a network dependency, and
// it keeps team resolution available even when the stats host is down.
var teamDirectory = []resolve.TeamEntry{
	{Entity: resolve.Entity{ID: 1610612737, Name: "Atlanta Hawks"}, Nickname: "Hawks", Abbreviation: "ATL", City: "Atlanta"},
	{Entity: resolve.Entity{ID: 1610612738, Name: "Boston Celtics"}, Nickname: "Celtics", Abbreviation: "BOS", City: "Boston"},
	{Entity: resolve.Entity{ID: 1610612751, Name: "Brooklyn Nets"}, Nickname: "Nets", Abbreviation: "BKN", City: "Brooklyn"},
	{Entity: resolve.Entity{ID: 1610612766, Name: "Charlotte Hornets"}, Nickname: "Hornets", Abbreviation: "CHA", City: "Charlotte"},
	{Entity: resolve.Entity{ID: 1610612741, Name: "Chicago Bulls"}, Nickname: "Bulls", Abbreviation: "CHI", City: "Chicago"},
	{Entity: resolve.Entity{ID: 1610612739, Name: "Cleveland Cavaliers"}, Nickname: "Cavaliers", Abbreviation: "CLE", City: "Cleveland"},
	{Entity: resolve.Entity{ID: 1610612742, Name: "Dallas Mavericks"}, Nickname: "Mavericks", Abbreviation: "DAL", City: "Dallas"},
	{Entity: resolve.Entity{ID: 1610612743, Name: "Denver Nuggets"}, Nickname: "Nuggets", Abbreviation: "DEN", City: "Denver"},
	{Entity: resolve.Entity{ID: 1610612765, Name: "Detroit Pistons"}, Nickname: "Pistons", Abbreviation: "DET", City: "Detroit"},
	{Entity: resolve.Entity{ID: 1610612744, Name: "Golden State Warriors"}, Nickname: "Warriors", Abbreviation: "GSW", City: "Golden State"},
	{Entity: resolve.Entity{ID: 1610612745, Name: "Houston Rockets"}, Nickname: "Rockets", Abbreviation: "HOU", City: "Houston"},
	{Entity: resolve.Entity{ID: 1610612754, Name: "Indiana Pacers"}, Nickname: "Pacers", Abbreviation: "IND", City: "Indiana"},
	{Entity: resolve.Entity{ID: 1610612746, Name: "LA Clippers"}, Nickname: "Clippers", Abbreviation: "LAC", City: "Los Angeles"},
	{Entity: resolve.Entity{ID: 1610612747, Name: "Los Angeles Lakers"}, Nickname: "Lakers", Abbreviation: "LAL", City: "Los Angeles"},
	{Entity: resolve.Entity{ID: 1610612763, Name: "Memphis Grizzlies"}, Nickname: "Grizzlies", Abbreviation: "MEM", City: "Memphis"},
	{Entity: resolve.Entity{ID: 1610612748, Name: "Miami Heat"}, Nickname: "Heat", Abbreviation: "MIA", City: "Miami"},
	{Entity: resolve.Entity{ID: 1610612749, Name: "Milwaukee Bucks"}, Nickname: "Bucks", Abbreviation: "MIL", City: "Milwaukee"},
	{Entity: resolve.Entity{ID: 1610612750, Name: "Minnesota Timberwolves"}, Nickname: "Timberwolves", Abbreviation: "MIN", City: "Minnesota"},
	{Entity: resolve.Entity{ID: 1610612740, Name: "New Orleans Pelicans"}, Nickname: "Pelicans", Abbreviation: "NOP", City: "New Orleans"},
	{Entity: resolve.Entity{ID: 1610612752, Name: "New York Knicks"}, Nickname: "Knicks", Abbreviation: "NYK", City: "New York"},
	{Entity: resolve.Entity{ID: 1610612760, Name: "Oklahoma City Thunder"}, Nickname: "Thunder", Abbreviation: "OKC", City: "Oklahoma City"},
	{Entity: resolve.Entity{ID: 1610612753, Name: "Orlando Magic"}, Nickname: "Magic", Abbreviation: "ORL", City: "Orlando"},
	{Entity: resolve.Entity{ID: 1610612755, Name: "Philadelphia 76ers"}, Nickname: "76ers", Abbreviation: "PHI", City: "Philadelphia"},
	{Entity: resolve.Entity{ID: 1610612756, Name: "Phoenix Suns"}, Nickname: "Suns", Abbreviation: "PHX", City: "Phoenix"},
	{Entity: resolve.Entity{ID: 1610612757, Name: "Portland Trail Blazers"}, Nickname: "Trail Blazers", Abbreviation: "POR", City: "Portland"},
	{Entity: resolve.Entity{ID: 1610612758, Name: "Sacramento Kings"}, Nickname: "Kings", Abbreviation: "SAC", City: "Sacramento"},
	{Entity: resolve.Entity{ID: 1610612759, Name: "San Antonio Spurs"}, Nickname: "Spurs", Abbreviation: "SAS", City: "San Antonio"},
	{Entity: resolve.Entity{ID: 1610612761, Name: "Toronto Raptors"}, Nickname: "Raptors", Abbreviation: "TOR", City: "Toronto"},
	{Entity: resolve.Entity{ID: 1610612762, Name: "Utah Jazz"}, Nickname: "Jazz", Abbreviation: "UTA", City: "Utah"},
	{Entity: resolve.Entity{ID: 1610612764, Name: "Washington Wizards"}, Nickname: "Wizards", Abbreviation: "WAS", City: "Washington"},
}
