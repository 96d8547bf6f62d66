package features

// FeatureCount is the length of every extracted vector. The classifier's
// trained schema consumes exactly this many values in exactly this order;
// the order is a fixed contract, never inferred at runtime.
const FeatureCount = 78

// FeatureNames documents the vector layout, index for index. Field naming
// follows the CICFlowMeter convention the training data uses.
var FeatureNames = [FeatureCount]string{
	"Source Port",
	"Destination Port",
	"Protocol",
	"Flow Duration",
	"Total Fwd Packets",
	"Total Bwd Packets",
	"Fwd Packets Length Total",
	"Bwd Packets Length Total",
	"Fwd Packet Length Min",
	"Fwd Packet Length Max",
	"Fwd Packet Length Mean",
	"Fwd Packet Length Std",
	"Bwd Packet Length Min",
	"Bwd Packet Length Max",
	"Bwd Packet Length Mean",
	"Bwd Packet Length Std",
	"Packet Length Min",
	"Packet Length Max",
	"Packet Length Mean",
	"Packet Length Std",
	"Packet Length Variance",
	"Flow Bytes/s",
	"Flow Packets/s",
	"Fwd Bytes/s",
	"Fwd Packets/s",
	"Bwd Bytes/s",
	"Bwd Packets/s",
	"Flow IAT Mean",
	"Flow IAT Std",
	"Flow IAT Max",
	"Flow IAT Min",
	"Fwd IAT Mean",
	"Fwd IAT Std",
	"Fwd IAT Max",
	"Fwd IAT Min",
	"Bwd IAT Mean",
	"Bwd IAT Std",
	"Bwd IAT Max",
	"Bwd IAT Min",
	"Fwd FIN Flags",
	"Fwd SYN Flags",
	"Fwd RST Flags",
	"Fwd PSH Flags",
	"Fwd URG Flags",
	"Bwd FIN Flags",
	"Bwd SYN Flags",
	"Bwd RST Flags",
	"Bwd PSH Flags",
	"Bwd URG Flags",
	"Fwd Header Length",
	"Bwd Header Length",
	"Fwd Segment Size Avg",
	"Bwd Segment Size Avg",
	"Fwd Segment Size Min",
	"Fwd Act Data Packets",
	"Down/Up Ratio",
	"Fwd Bulk Count",
	"Fwd Bulk Rate Avg",
	"Fwd Bulk Bytes Avg",
	"Fwd Bulk Packets Avg",
	"Bwd Bulk Count",
	"Bwd Bulk Rate Avg",
	"Bwd Bulk Bytes Avg",
	"Bwd Bulk Packets Avg",
	"Subflow Fwd Packets",
	"Subflow Fwd Bytes",
	"Subflow Bwd Packets",
	"Subflow Bwd Bytes",
	"Init Fwd Win Bytes",
	"Init Bwd Win Bytes",
	"Active Mean",
	"Active Std",
	"Active Max",
	"Active Min",
	"Idle Mean",
	"Idle Std",
	"Idle Max",
	"Idle Min",
}
