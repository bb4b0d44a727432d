package catalyst

// Tier is a pricing and limits category assigned at signup.
type Tier string

// Available pricing tiers.
const (
	TierFree       Tier = "free"
	TierResearcher Tier = "researcher"
	TierStartup    Tier = "startup"
	TierEnterprise Tier = "enterprise"
)

// JobStatus is the server-reported state of a simulation job.
//
// The constants below cover every status the API currently reports, but
// the set is open on the wire: [Client.Simulate] treats any status other
// than completed or failed as still pending.
type JobStatus string

const (
	JobStatusQueued    JobStatus = "queued"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// Population is a named group of simulated spiking units.
type Population struct {
	// Label identifies the population within its network.
	Label string `json:"label"`

	// Size is the number of units in the population.
	Size int `json:"size"`

	// Params holds optional per-population parameters,
	// e.g. {"threshold": 1000}.
	Params map[string]float64 `json:"params,omitempty"`
}

// Connection is a directed link between two populations.
type Connection struct {
	// Source and Target are population labels.
	Source string `json:"source"`
	Target string `json:"target"`

	// Topology describes how units are wired, e.g. "all_to_all".
	Topology string `json:"topology,omitempty"`

	// Weight is the synaptic weight applied to the connection.
	Weight float64 `json:"weight,omitempty"`

	// Probability is the wiring probability for sparse topologies.
	Probability float64 `json:"probability,omitempty"`
}

// Stimulus injects current into a population during a simulation.
type Stimulus struct {
	Population string  `json:"population"`
	Current    float64 `json:"current"`
}

// Reward is a reward signal delivered at a given timestep, used by
// reward-modulated learning rules.
type Reward struct {
	Time  int     `json:"time"`
	Value float64 `json:"value"`
}

// LearningConfig enables synaptic plasticity for a job.
type LearningConfig struct {
	// Rule names the plasticity rule, e.g. "stdp".
	Rule string `json:"rule"`

	// Rate is the optional learning rate.
	Rate float64 `json:"rate,omitempty"`
}

// NetworkRequest describes a network to create.
type NetworkRequest struct {
	Populations []Population `json:"populations"`
	Connections []Connection `json:"connections"`
}

// Network is a created network as echoed back by the server.
//
// Only the NetworkID is needed for subsequent calls; the network itself
// lives server-side.
type Network struct {
	NetworkID    string       `json:"network_id"`
	TotalNeurons int          `json:"total_neurons"`
	Populations  []Population `json:"populations"`
	Connections  []Connection `json:"connections"`
}

// JobRequest describes a simulation job to submit.
type JobRequest struct {
	// NetworkID references a network from [Client.CreateNetwork].
	NetworkID string `json:"network_id"`

	// Timesteps is the number of simulation timesteps to run.
	Timesteps int `json:"timesteps"`

	// Stimuli optionally injects current into populations.
	Stimuli []Stimulus `json:"stimuli"`

	// Rewards optionally delivers reward signals.
	Rewards []Reward `json:"rewards"`

	// Learning optionally enables plasticity.
	Learning *LearningConfig `json:"learning,omitempty"`
}

// Job is a simulation job as reported by the server.
type Job struct {
	// JobID identifies the job. Present on submission responses.
	JobID string `json:"job_id,omitempty"`

	// Status is the current job state.
	Status JobStatus `json:"status"`

	// Result holds the summary results once the job has completed.
	Result *SimulationResult `json:"result,omitempty"`

	// ComputeSeconds is the server-side compute time consumed.
	ComputeSeconds float64 `json:"compute_seconds,omitempty"`

	// ErrorMessage explains the failure when Status is failed.
	ErrorMessage string `json:"error_message,omitempty"`
}

// SimulationResult is the summary produced by a completed job.
//
// For full per-neuron spike data use [Client.GetSpikes].
type SimulationResult struct {
	// TotalSpikes is the spike count across all populations.
	TotalSpikes int `json:"total_spikes"`

	// FiringRates maps population label to mean firing rate.
	FiringRates map[string]float64 `json:"firing_rates,omitempty"`

	// SpikeCounts maps population label to a per-timestep spike count
	// timeseries.
	SpikeCounts map[string][]int `json:"spike_counts,omitempty"`
}

// SpikeData holds the full spike trains of a completed job.
type SpikeData struct {
	// SpikeTrains maps population label to neuron index (JSON object
	// keys, so indices arrive as strings) to the ordered timesteps at
	// which that neuron fired.
	SpikeTrains map[string]map[string][]float64 `json:"spike_trains"`
}

// SignupResponse is the account created by [Signup].
type SignupResponse struct {
	// APIKey is the issued credential. Keys start with "cn_live_".
	APIKey string `json:"api_key"`

	// Tier is the tier the account was created on.
	Tier Tier `json:"tier"`

	// Limits are the usage limits attached to the tier.
	Limits Limits `json:"limits"`

	// CheckoutURL is set for paid tiers; complete checkout there to
	// activate the account.
	CheckoutURL string `json:"checkout_url,omitempty"`
}

// Limits are the per-tier usage limits.
type Limits struct {
	JobsPerDay   int `json:"jobs_per_day"`
	MaxNeurons   int `json:"max_neurons,omitempty"`
	MaxTimesteps int `json:"max_timesteps,omitempty"`
}

// Usage reports consumption for the current billing period.
type Usage struct {
	JobsToday           int     `json:"jobs_today"`
	ComputeSecondsToday float64 `json:"compute_seconds_today"`
	EstimatedCost       float64 `json:"estimated_cost"`
}
