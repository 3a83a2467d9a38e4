// Package panzoom attaches pan and zoom manipulation to an interactive
// surface. It interprets a raw multi-touch pointer stream as drags and
// pinches, continues a released drag with an inertial fling, and snaps the
// surface back to the identity transform when a session stalls.
//
// # Quick start
//
// A [Stage] hosts [View] surfaces and drives everything from an ebiten game
// loop:
//
//	sched := panzoom.NewScheduler(ebiten.TPS())
//	stage := panzoom.NewStage(sched)
//	reg := panzoom.NewRegistry(sched)
//
//	view := stage.NewView("map", 320, 240)
//	if _, err := reg.Attach(stage, view.ID, panzoom.DefaultConfig()); err != nil {
//		log.Fatal(err)
//	}
//
//	func (g *Game) Update() error { g.stage.Update(); return nil }
//
// Any type implementing [Surface] and [Host] can stand in for the stage.
//
// # Gesture modes
//
// Each session starts in [ModeIdle] on the first pointer down. Movement past
// the drag threshold on either axis commits to [ModeDragging]; a pinch, or a
// pointer held still for Config.ScaleReadyDelay, moves to [ModeScaling].
// Pointer down also arms a reset timer: unless a drag or pinch cancels it,
// the surface tweens back to identity after Config.ResetDelay.
//
// # Timing
//
// All timers and animation ticks run on a [Scheduler], a simulated clock the
// host advances once per frame. Nothing in the package starts goroutines.
//
// Gesture events can be forwarded to an ECS with the [Donburi] adapter in
// panzoom/ecs.
//
// [Donburi]: https://github.com/yohamta/donburi
package panzoom
