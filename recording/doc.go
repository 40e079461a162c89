// Package recording captures the calls a layout pass makes on a
// layout.Engine as typed commands.
//
// # Architecture
//
// The package follows a Command Pattern with two components:
//
//   - Recorder: a layout.Engine that appends one command per call
//   - Recording: the immutable command list, replayable to any engine
//
// A Recorder either answers the engine queries itself (Hovered from a
// HoverFunc, element ids from configured names or a sequence) or forwards
// every call to a target engine and records the target's answers. The
// second form records a real layout pass without changing it.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(nil)
//	rec.SetHover(recording.HoverIDs("save"))
//
//	res := bind.Interpret(cmds, nil, rec, data, bind.Input{})
//	r := rec.FinishRecording()
//
//	fmt.Println(r.Count(recording.CmdOpenElement), "elements")
//
// # Playback
//
// Playback replays the mutating commands (open, close, configure, text)
// in order and asks the target the same queries:
//
//	tree := layout.NewTree(nil)
//	tree.BeginLayout(800, 600)
//	if err := r.Playback(tree); err != nil {
//	    // the recording opened and closed elements unevenly
//	}
//	cmds := tree.EndLayout()
package recording
