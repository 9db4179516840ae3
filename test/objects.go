package test

import (
	"fmt"
	"time"
)

// =============================================================================
// Group 2: Objects
// =============================================================================

// TestLampRoundTrip fetches the lamp and carries it outside
func TestLampRoundTrip(serverAddr string) TestResult {
	const testName = "Lamp Round Trip"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer client.Close()

	err = play(testName, client, []step{
		{"IN", "There is LAMP here"},
		{"TAKE LAMP", "LAMP taken"},
		{"OUT", startMarker},
		{"INVENTORY", "LAMP: a brightly shining brass lamp"},
	})
	if err != nil {
		return fail(testName, err.Error())
	}
	if client.HasMessage("KEYS:") {
		return fail(testName, "Inventory lists KEYS that were never taken")
	}

	if err := play(testName, client, []step{{"IN", "There is KEYS here"}}); err != nil {
		return fail(testName, err.Error())
	}
	if client.HasMessage("There is LAMP here") {
		return fail(testName, "LAMP still shown in the building")
	}
	return pass(testName, "LAMP moved from the building to the inventory")
}

// TestTakeGuards checks TAKE never moves an object that is not in the room
func TestTakeGuards(serverAddr string) TestResult {
	const testName = "Take Guards"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer client.Close()

	err = play(testName, client, []step{
		{"TAKE", "Take what?"},
		{"TAKE ROD", "I don't see that here."},
		{"TAKE LAMP", "I don't see that here."},
		{"TAKE UNICORN", "I don't see that here."},
		{"IN", "well house"},
		{"TAKE LAMP", "LAMP taken"},
		{"TAKE LAMP", "I don't see that here."},
	})
	if err != nil {
		return fail(testName, err.Error())
	}
	return pass(testName, "TAKE refused absent objects")
}

// TestDropGuards checks DROP never moves an object that is not carried
func TestDropGuards(serverAddr string) TestResult {
	const testName = "Drop Guards"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer client.Close()

	err = play(testName, client, []step{
		{"DROP", "Drop what?"},
		{"DROP LAMP", "You are not carrying that."},
		{"IN", "well house"},
		{"DROP KEYS", "You are not carrying that."},
		{"LOOK", "There is KEYS here"},
	})
	if err != nil {
		return fail(testName, err.Error())
	}
	return pass(testName, "DROP refused objects not carried")
}

// TestObjectInOnePlace takes and drops the keys and counts where they are
func TestObjectInOnePlace(serverAddr string) TestResult {
	const testName = "Object In One Place"

	client, err := connect(testName, serverAddr)
	if err != nil {
		return fail(testName, fmt.Sprintf("Connection failed: %v", err))
	}
	defer client.Close()

	err = play(testName, client, []step{
		{"IN", "well house"},
		{"TAKE KEYS", "KEYS taken"},
		{"OUT", startMarker},
		{"DROP KEYS", "KEYS dropped"},
		{"LOOK", "There is KEYS here"},
	})
	if err != nil {
		return fail(testName, err.Error())
	}
	if n := client.CountMessages("There is KEYS here"); n != 1 {
		return fail(testName, fmt.Sprintf("KEYS shown %d times", n))
	}

	client.ClearMessages()
	client.SendCommand("INVENTORY")
	client.SendCommand("IN")
	if !client.WaitForMessage("well house", replyTimeout) {
		return fail(testName, "Could not re-enter the building")
	}
	time.Sleep(100 * time.Millisecond)
	if client.HasMessage("KEYS") {
		return fail(testName, "KEYS reported in the inventory or the building after being dropped outside")
	}
	return pass(testName, "KEYS were in exactly one place throughout")
}
