package test

import "fmt"

// =============================================================================
// Group 1: Rooms & Movement
// =============================================================================

// TestStartingRoom checks the lowest-numbered room is shown on connect
func TestStartingRoom(serverAddr string) TestResult {
	const testName = "Starting Room"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Failed to connect: %v", err))
	}
	defer client.Close()

	if !client.HasMessage("gully to the south") {
		return fail(testName, "Starting room description incomplete")
	}
	return pass(testName, "Starting room described on connect")
}

// TestMovement walks out and back along plain exits
func TestMovement(serverAddr string) TestResult {
	const testName = "Movement"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer client.Close()

	err = play(testName, client, []step{
		{"WEST", "top of a small hill"},
		{"EAST", startMarker},
		{"south", "valley in the forest"},
		{"north", startMarker},
	})
	if err != nil {
		return fail(testName, err.Error())
	}
	return pass(testName, "Moved west, east, south and north")
}

// TestSynonymMovement checks an alias does exactly what its word does
func TestSynonymMovement(serverAddr string) TestResult {
	const testName = "Synonym Movement"

	alias, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer alias.Close()

	word, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer word.Close()

	aliasReply, ok := alias.Do("N", "There is LAMP here", replyTimeout)
	if !ok {
		return fail(testName, "N did not lead into the building")
	}
	wordReply, ok := word.Do("NORTH", "There is LAMP here", replyTimeout)
	if !ok {
		return fail(testName, "NORTH did not lead into the building")
	}
	if fmt.Sprint(aliasReply) != fmt.Sprint(wordReply) {
		return fail(testName, fmt.Sprintf("N answered %v but NORTH answered %v", aliasReply, wordReply))
	}

	if err := play(testName, alias, []step{{"GET KEYS", "KEYS taken"}}); err != nil {
		return fail(testName, err.Error())
	}
	return pass(testName, "N and NORTH behave the same, GET means TAKE")
}

// TestUnknownDirection checks an unknown word leaves the player in place
func TestUnknownDirection(serverAddr string) TestResult {
	const testName = "Unknown Direction"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer client.Close()

	err = play(testName, client, []step{
		{"XYZZY", "Command not found"},
		{"EAST", "Command not found"},
		{"LOOK", startMarker},
	})
	if err != nil {
		return fail(testName, err.Error())
	}
	return pass(testName, "Unknown words answered without moving")
}

// TestKeyedExit checks the grate only opens for a player carrying the keys
func TestKeyedExit(serverAddr string) TestResult {
	const testName = "Keyed Exit"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer client.Close()

	err = play(testName, client, []step{
		{"S", "valley in the forest"},
		{"S", "20-foot depression"},
		{"DOWN", "Command not found"},
		{"LOOK", "20-foot depression"},
		{"N", "valley in the forest"},
		{"N", startMarker},
		{"IN", "well house"},
		{"TAKE KEYS", "KEYS taken"},
		{"OUT", startMarker},
		{"S", "valley in the forest"},
		{"S", "20-foot depression"},
		{"DOWN", "small chamber"},
	})
	if err != nil {
		return fail(testName, err.Error())
	}
	return pass(testName, "Grate refused without keys and opened with them")
}

// TestForcedPassage checks a forced room moves the player on without input
func TestForcedPassage(serverAddr string) TestResult {
	const testName = "Forced Passage"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer client.Close()

	err = play(testName, client, []step{
		{"IN", "well house"},
		{"TAKE KEYS", "KEYS taken"},
		{"OUT", startMarker},
		{"S", "valley in the forest"},
		{"S", "20-foot depression"},
		{"D", "small chamber"},
	})
	if err != nil {
		return fail(testName, err.Error())
	}

	client.ClearMessages()
	client.SendCommand("WEST")
	if !client.WaitForMessage("debris room", replyTimeout) {
		return fail(testName, "Forced passage did not reach the debris room")
	}
	if !client.HasMessage("long dark chute") {
		return fail(testName, "The chute was never described")
	}

	// Without the lamp there is no way out
	if err := play(testName, client, []step{{"OUT", "Command not found"}}); err != nil {
		return fail(testName, err.Error())
	}
	return pass(testName, "Slid through the chute into the debris room")
}
