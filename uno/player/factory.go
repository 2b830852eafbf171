package player

import (
	"math/rand"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/game"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
	"Malphite", "Nunu", "Orianna", "Poppy",
	"Qiyana", "Rakan", "Shaco", "Twisted Fate",
	"Udyr", "Veigar", "Wukong", "Xayah",
	"Yuumi", "Zoe",
}

// CreatePlayers seats the human first, followed by numberOfPlayers-1 bots
// with distinct names.
func CreatePlayers(numberOfPlayers int, humanPlayerName string, port Port, rng *rand.Rand) []Player {
	players := make([]Player, 0, numberOfPlayers)
	players = append(players, NewHuman(humanPlayerName, port))
	players = append(players, generateBots(numberOfPlayers-1, humanPlayerName, rng)...)
	return players
}

func generateBots(amount int, reserved string, rng *rand.Rand) []Player {
	names := make([]string, 0, len(botNames))
	for _, name := range botNames {
		if name != reserved {
			names = append(names, name)
		}
	}
	rng.Shuffle(len(names), func(i int, j int) { names[i], names[j] = names[j], names[i] })
	if amount > len(names) {
		amount = len(names)
	}
	bots := make([]Player, 0, amount)
	for _, botName := range names[:amount] {
		bots = append(bots, NewBot(botName, rng))
	}
	return bots
}

func cardAt(state game.State, index int) (card.Card, bool) {
	if index < 0 || index >= len(state.ViewerHand) {
		return card.Card{}, false
	}
	return state.ViewerHand[index], true
}
