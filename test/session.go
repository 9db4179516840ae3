package test

import "fmt"

// =============================================================================
// Group 3: Session
// =============================================================================

// TestHelp checks HELP lists the synonym table
func TestHelp(serverAddr string) TestResult {
	const testName = "Help"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer client.Close()

	if err := play(testName, client, []step{{"HELP", "INVENTORY"}}); err != nil {
		return fail(testName, err.Error())
	}
	if !client.WaitForMessage("NORTH", replyTimeout) {
		return fail(testName, "Synonym table missing NORTH")
	}
	return pass(testName, "HELP shows the shortcuts")
}

// TestQuitDeclined answers N and keeps playing
func TestQuitDeclined(serverAddr string) TestResult {
	const testName = "Quit Declined"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer client.Close()

	// The question has no line ending, so it arrives with the next reply
	client.ClearMessages()
	client.SendCommand("QUIT")
	client.SendCommand("N")
	client.SendCommand("LOOK")
	if !client.WaitForMessage(startMarker, replyTimeout) {
		return fail(testName, "Game did not continue after declining")
	}
	if !client.HasMessage("Are you sure (Y or N)?") {
		return fail(testName, "QUIT did not ask for confirmation")
	}
	if client.HasMessage("See you later!") {
		return fail(testName, "Game ended after N")
	}
	return pass(testName, "Declining QUIT leaves the player where they were")
}

// TestQuitConfirmed answers Y and expects the server to hang up
func TestQuitConfirmed(serverAddr string) TestResult {
	const testName = "Quit Confirmed"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer client.Close()

	client.ClearMessages()
	client.SendCommand("QUIT")
	client.SendCommand("y")
	if !client.WaitForMessage("See you later!", replyTimeout) {
		return fail(testName, "No farewell after confirming")
	}
	if !client.WaitForClose(replyTimeout) {
		return fail(testName, "Connection stayed open after QUIT")
	}
	return pass(testName, "Confirmed QUIT ends the game")
}

// TestGameOver escapes through the debris room with the lamp
func TestGameOver(serverAddr string) TestResult {
	const testName = "Game Over"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer client.Close()

	err = play(testName, client, []step{
		{"IN", "well house"},
		{"TAKE KEYS", "KEYS taken"},
		{"TAKE LAMP", "LAMP taken"},
		{"OUT", startMarker},
		{"S", "valley in the forest"},
		{"S", "20-foot depression"},
		{"D", "small chamber"},
		{"W", "debris room"},
		{"OUT", "GAME OVER!"},
	})
	if err != nil {
		return fail(testName, err.Error())
	}
	if !client.WaitForClose(replyTimeout) {
		return fail(testName, "Connection stayed open after GAME OVER")
	}
	return pass(testName, "Reaching room 0 ends the game")
}

// TestIndependentGames checks one player's actions never reach another
func TestIndependentGames(serverAddr string) TestResult {
	const testName = "Independent Games"

	first, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer first.Close()

	if err := play(testName, first, []step{{"IN", "well house"}, {"TAKE LAMP", "LAMP taken"}}); err != nil {
		return fail(testName, err.Error())
	}

	second, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer second.Close()

	if err := play(testName, second, []step{{"IN", "There is LAMP here"}}); err != nil {
		return fail(testName, err.Error())
	}
	return pass(testName, "Each connection plays its own world")
}
