package classifier

import (
	"NetSentry/internal/engine/features"
	"NetSentry/internal/engine/rules"
	"NetSentry/internal/model"
)

// Heuristic is the scorer the bundled classifier service runs when no
// trained model is deployed. It reproduces the coarse shape of the
// trained classes with fixed thresholds over the feature vector; it is
// deliberately conservative and defaults to a benign verdict.
type Heuristic struct{}

// Feature indices resolved by name so the scorer cannot drift from the
// vector layout.
var (
	idxDstPort     = featureIndex("Destination Port")
	idxDuration    = featureIndex("Flow Duration")
	idxTotFwdPkts  = featureIndex("Total Fwd Packets")
	idxTotBwdPkts  = featureIndex("Total Bwd Packets")
	idxFlowBytesS  = featureIndex("Flow Bytes/s")
	idxFlowPktsS   = featureIndex("Flow Packets/s")
	idxFlowIATMean = featureIndex("Flow IAT Mean")
	idxFlowIATStd  = featureIndex("Flow IAT Std")
	idxFwdSYN      = featureIndex("Fwd SYN Flags")
	idxBwdRST      = featureIndex("Bwd RST Flags")
	idxFwdActData  = featureIndex("Fwd Act Data Packets")
)

func featureIndex(name string) int {
	for i, n := range features.FeatureNames {
		if n == name {
			return i
		}
	}
	panic("unknown feature name: " + name)
}

// Score assigns a label and confidence to one feature vector.
func (Heuristic) Score(v []float64) model.ClassificationResult {
	if len(v) != features.FeatureCount {
		return model.ClassificationResult{Label: model.LabelBenign, Confidence: 0}
	}

	// Flood: sustained very high packet rate.
	if v[idxFlowPktsS] > 1000 && v[idxTotFwdPkts] > 100 {
		return model.ClassificationResult{Label: "DDoS", Confidence: 0.96}
	}

	// Probe: SYN answered by RST with no application data exchanged.
	if v[idxFwdSYN] >= 1 && v[idxBwdRST] >= 1 && v[idxFwdActData] == 0 {
		return model.ClassificationResult{Label: rules.LabelPortScan, Confidence: 0.88}
	}

	// Short bursts against ssh.
	if v[idxDstPort] == 22 && v[idxDuration] < 2 && v[idxTotFwdPkts] <= 20 {
		return model.ClassificationResult{Label: rules.LabelSSHBruteForce, Confidence: 0.86}
	}

	// Long-lived trickle against a web port.
	if v[idxDstPort] == 80 && v[idxDuration] > 10 && v[idxFlowBytesS] < 200 {
		return model.ClassificationResult{Label: rules.LabelSlowConn, Confidence: 0.87}
	}

	// Beaconing: near-constant inter-arrival spacing over enough packets.
	totalPkts := v[idxTotFwdPkts] + v[idxTotBwdPkts]
	if totalPkts >= 6 && v[idxFlowIATMean] > 0 && v[idxFlowIATStd] < 0.1*v[idxFlowIATMean] {
		return model.ClassificationResult{Label: "Bot", Confidence: 0.80}
	}

	return model.ClassificationResult{Label: model.LabelBenign, Confidence: 0.90}
}
