// Package catalyst provides a Go SDK for the Catalyst Cloud API.
//
// Catalyst Cloud runs spiking neural network simulations as remote jobs.
// Define a network of populations and connections, submit a job, and read
// back firing rates and spike trains. No neuromorphic hardware required.
//
// # Installation
//
// To install the SDK, use go get:
//
//	go get github.com/catalyst-neuromorphic/catalyst-go
//
// # Quick Start
//
// Create a client, define a network, and run a simulation:
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "log"
//
//	    catalyst "github.com/catalyst-neuromorphic/catalyst-go"
//	)
//
//	func main() {
//	    client := catalyst.NewClient("cn_live_...")
//
//	    net, err := client.CreateNetwork(context.Background(), &catalyst.NetworkRequest{
//	        Populations: []catalyst.Population{
//	            {Label: "input", Size: 100, Params: map[string]float64{"threshold": 1000}},
//	            {Label: "output", Size: 50},
//	        },
//	        Connections: []catalyst.Connection{
//	            {Source: "input", Target: "output", Topology: "all_to_all", Weight: 500},
//	        },
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    job, err := client.Simulate(context.Background(), &catalyst.JobRequest{
//	        NetworkID: net.NetworkID,
//	        Timesteps: 1000,
//	        Stimuli: []catalyst.Stimulus{
//	            {Population: "input", Current: 5000},
//	        },
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(job.Result.FiringRates)
//	}
//
// # Client Configuration
//
// The client can be configured using functional options:
//
//	client := catalyst.NewClient("cn_live_...",
//	    catalyst.WithBaseURL("https://staging.catalyst-neuromorphic.com"),
//	    catalyst.WithTimeout(time.Minute),
//	)
//
// # Error Handling
//
// The SDK provides typed errors for common failure cases:
//
//	job, err := client.Simulate(ctx, req)
//	if err != nil {
//	    var apiErr *catalyst.APIError
//	    if errors.As(err, &apiErr) {
//	        // The server rejected a request, or the job itself failed.
//	        fmt.Println(apiErr.StatusCode, apiErr.Detail)
//	    }
//	    var timeoutErr *catalyst.TimeoutError
//	    if errors.As(err, &timeoutErr) {
//	        // The job did not finish within the polling bound.
//	        fmt.Println(timeoutErr.JobID)
//	    }
//	}
//
// Underlying network failures are returned unwrapped, exactly as the
// transport reported them.
//
// # Thread Safety
//
// The [Client] is immutable after construction and safe for concurrent use
// by multiple goroutines. Each method call is independent and does not
// share state.
package catalyst
