package response

import "reservation-engine/internal/usecase/queries"

type LifecycleResponse struct {
	CanApprove          bool     `json:"canApprove"`
	CanDeny             bool     `json:"canDeny"`
	CanReturnToHandling bool     `json:"canReturnToHandling"`
	CanEdit             bool     `json:"canEdit"`
	Actions             []string `json:"actions"`
}

func FromLifecycleView(v queries.LifecycleView) *LifecycleResponse {
	actions := make([]string, len(v.Actions))
	for i, a := range v.Actions {
		actions[i] = string(a)
	}
	return &LifecycleResponse{
		CanApprove:          v.CanApprove,
		CanDeny:             v.CanDeny,
		CanReturnToHandling: v.CanReturnToHandling,
		CanEdit:             v.CanEdit,
		Actions:             actions,
	}
}
