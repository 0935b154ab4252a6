// Package trafficsim simulates a traffic light that alternates between red
// and green and notifies subscribed vehicles of every switch.
//
// A TrafficLight owns an EventManager that keeps an ordered list of
// listeners per EventType. Switching the light delivers the event to every
// subscriber synchronously, in subscription order, before the switch returns.
// Vehicle is the stock listener: it starts moving on green and stops on red.
// Simulation wires one light to a set of vehicles and runs a fixed number of
// rounds separated by a delay.
package trafficsim
