package board

import "github.com/raceboard/ludo/internal/models"

// GridCell is a board coordinate in the grid system used by the 2-4 player
// layout. Capture tests on this layout compare cells exactly.
type GridCell struct {
	Row int
	Col int
}

// VectorCell is a board coordinate in the vector system used by the 5 and 6
// player layouts. Each color's path is laid out independently, so logically
// shared cells do not land on identical coordinates; capture tests compare
// within VectorTolerance on both axes.
type VectorCell struct {
	X float64
	Y float64
}

// Index 0 of every path is the yard (token not on the board) and is never
// compared. Shared track, home column and finish index boundaries are defined
// per variant in geometry.go.

var gridPaths = map[models.Color][]GridCell{
	models.ColorRed: {
		{-1, -1}, {7, 1}, {7, 2}, {7, 3}, {7, 4}, {7, 5},
		{7, 6}, {6, 7}, {5, 7}, {4, 7}, {3, 7}, {2, 7},
		{1, 7}, {0, 7}, {0, 8}, {0, 9}, {1, 9}, {2, 9},
		{3, 9}, {4, 9}, {5, 9}, {6, 9}, {7, 10}, {7, 11},
		{7, 12}, {7, 13}, {7, 14}, {7, 15}, {7, 16}, {8, 16},
		{9, 16}, {9, 15}, {9, 14}, {9, 13}, {9, 12}, {9, 11},
		{9, 10}, {10, 9}, {11, 9}, {12, 9}, {13, 9}, {14, 9},
		{15, 9}, {16, 9}, {16, 8}, {16, 7}, {15, 7}, {14, 7},
		{13, 7}, {12, 7}, {11, 7}, {10, 7}, {9, 6}, {9, 5},
		{9, 4}, {9, 3}, {9, 2}, {9, 1}, {9, 0}, {8, 0},
		{8, 1}, {8, 2}, {8, 3}, {8, 4}, {8, 5}, {8, 6},
		{8, 8},
	},
	models.ColorGreen: {
		{-1, -1}, {1, 9}, {2, 9}, {3, 9}, {4, 9}, {5, 9},
		{6, 9}, {7, 10}, {7, 11}, {7, 12}, {7, 13}, {7, 14},
		{7, 15}, {7, 16}, {8, 16}, {9, 16}, {9, 15}, {9, 14},
		{9, 13}, {9, 12}, {9, 11}, {9, 10}, {10, 9}, {11, 9},
		{12, 9}, {13, 9}, {14, 9}, {15, 9}, {16, 9}, {16, 8},
		{16, 7}, {15, 7}, {14, 7}, {13, 7}, {12, 7}, {11, 7},
		{10, 7}, {9, 6}, {9, 5}, {9, 4}, {9, 3}, {9, 2},
		{9, 1}, {9, 0}, {8, 0}, {7, 0}, {7, 1}, {7, 2},
		{7, 3}, {7, 4}, {7, 5}, {7, 6}, {6, 7}, {5, 7},
		{4, 7}, {3, 7}, {2, 7}, {1, 7}, {0, 7}, {0, 8},
		{1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {6, 8},
		{8, 8},
	},
	models.ColorYellow: {
		{-1, -1}, {9, 15}, {9, 14}, {9, 13}, {9, 12}, {9, 11},
		{9, 10}, {10, 9}, {11, 9}, {12, 9}, {13, 9}, {14, 9},
		{15, 9}, {16, 9}, {16, 8}, {16, 7}, {15, 7}, {14, 7},
		{13, 7}, {12, 7}, {11, 7}, {10, 7}, {9, 6}, {9, 5},
		{9, 4}, {9, 3}, {9, 2}, {9, 1}, {9, 0}, {8, 0},
		{7, 0}, {7, 1}, {7, 2}, {7, 3}, {7, 4}, {7, 5},
		{7, 6}, {6, 7}, {5, 7}, {4, 7}, {3, 7}, {2, 7},
		{1, 7}, {0, 7}, {0, 8}, {0, 9}, {1, 9}, {2, 9},
		{3, 9}, {4, 9}, {5, 9}, {6, 9}, {7, 10}, {7, 11},
		{7, 12}, {7, 13}, {7, 14}, {7, 15}, {7, 16}, {8, 16},
		{8, 15}, {8, 14}, {8, 13}, {8, 12}, {8, 11}, {8, 10},
		{8, 8},
	},
	models.ColorBlue: {
		{-1, -1}, {15, 7}, {14, 7}, {13, 7}, {12, 7}, {11, 7},
		{10, 7}, {9, 6}, {9, 5}, {9, 4}, {9, 3}, {9, 2},
		{9, 1}, {9, 0}, {8, 0}, {7, 0}, {7, 1}, {7, 2},
		{7, 3}, {7, 4}, {7, 5}, {7, 6}, {6, 7}, {5, 7},
		{4, 7}, {3, 7}, {2, 7}, {1, 7}, {0, 7}, {0, 8},
		{0, 9}, {1, 9}, {2, 9}, {3, 9}, {4, 9}, {5, 9},
		{6, 9}, {7, 10}, {7, 11}, {7, 12}, {7, 13}, {7, 14},
		{7, 15}, {7, 16}, {8, 16}, {9, 16}, {9, 15}, {9, 14},
		{9, 13}, {9, 12}, {9, 11}, {9, 10}, {10, 9}, {11, 9},
		{12, 9}, {13, 9}, {14, 9}, {15, 9}, {16, 9}, {16, 8},
		{15, 8}, {14, 8}, {13, 8}, {12, 8}, {11, 8}, {10, 8},
		{8, 8},
	},
}

var fivePlayerPaths = map[models.Color][]VectorCell{
	models.ColorRed: {
		{0, 0}, {-0.508, 2.492}, {-0.508, 3.492}, {-0.508, 4.492},
		{-0.508, 5.492}, {-0.508, 6.492}, {-0.008, 7.192}, {0.492, 6.492},
		{0.492, 5.492}, {0.492, 4.492}, {0.492, 3.492}, {0.492, 2.492},
		{0.492, 1.492}, {0.342, 0.692}, {1.264, 0.931}, {2.215, 1.24},
		{3.166, 1.549}, {4.117, 1.858}, {5.068, 2.167}, {6.019, 2.476},
		{6.84, 2.217}, {6.328, 1.525}, {5.377, 1.216}, {4.426, 0.907},
		{3.475, 0.598}, {2.524, 0.289}, {1.573, -0.02}, {0.766, -0.125},
		{1.278, -0.928}, {1.866, -1.737}, {2.454, -2.546}, {3.042, -3.355},
		{3.629, -4.164}, {4.217, -4.973}, {4.224, -5.833}, {3.408, -5.561},
		{2.82, -4.751}, {2.233, -3.942}, {1.645, -3.133}, {1.057, -2.324},
		{0.469, -1.515}, {0.12, -0.78}, {-0.485, -1.515}, {-1.073, -2.324},
		{-1.661, -3.133}, {-2.249, -3.942}, {-2.836, -4.751}, {-3.424, -5.561},
		{-4.24, -5.833}, {-4.233, -4.973}, {-3.645, -4.164}, {-3.058, -3.355},
		{-2.47, -2.546}, {-1.882, -1.737}, {-1.294, -0.928}, {-0.703, -0.369},
		{-1.589, -0.02}, {-2.54, 0.289}, {-3.491, 0.598}, {-4.442, 0.907},
		{-5.393, 1.216}, {-6.344, 1.525}, {-6.856, 2.217}, {-6.035, 2.476},
		{-5.084, 2.167}, {-4.133, 1.858}, {-3.182, 1.549}, {-2.231, 1.24},
		{-1.28, 0.931}, {-0.566, 0.541}, {-0.008, 5.992}, {-0.008, 4.992},
		{-0.008, 3.992}, {-0.008, 2.992}, {-0.008, 1.992}, {-0.008, 0.992},
		{-0.008, -0.008},
	},
	models.ColorGreen: {
		{0, 0}, {2.223, 1.252}, {3.174, 1.561}, {4.125, 1.87},
		{5.076, 2.179}, {6.027, 2.488}, {6.848, 2.229}, {6.336, 1.537},
		{5.385, 1.228}, {4.434, 0.919}, {3.483, 0.61}, {2.532, 0.301},
		{1.581, -0.008}, {0.774, -0.113}, {1.286, -0.916}, {1.874, -1.725},
		{2.462, -2.534}, {3.05, -3.343}, {3.637, -4.152}, {4.225, -4.961},
		{4.232, -5.821}, {3.416, -5.549}, {2.828, -4.739}, {2.241, -3.93},
		{1.653, -3.121}, {1.065, -2.312}, {0.477, -1.503}, {0.128, -0.768},
		{-0.477, -1.503}, {-1.065, -2.312}, {-1.653, -3.121}, {-2.241, -3.93},
		{-2.828, -4.739}, {-3.416, -5.549}, {-4.232, -5.821}, {-4.225, -4.961},
		{-3.637, -4.152}, {-3.05, -3.343}, {-2.462, -2.534}, {-1.874, -1.725},
		{-1.286, -0.916}, {-0.695, -0.357}, {-1.581, -0.008}, {-2.532, 0.301},
		{-3.483, 0.61}, {-4.434, 0.919}, {-5.385, 1.228}, {-6.336, 1.537},
		{-6.848, 2.229}, {-6.027, 2.488}, {-5.076, 2.179}, {-4.125, 1.87},
		{-3.174, 1.561}, {-2.223, 1.252}, {-1.272, 0.943}, {-0.558, 0.553},
		{-0.5, 1.504}, {-0.5, 2.504}, {-0.5, 3.504}, {-0.5, 4.504},
		{-0.5, 5.504}, {-0.5, 6.504}, {0, 7.204}, {0.5, 6.504},
		{0.5, 5.504}, {0.5, 4.504}, {0.5, 3.504}, {0.5, 2.504},
		{0.5, 1.504}, {0.35, 0.704}, {5.706, 1.858}, {4.755, 1.549},
		{3.804, 1.24}, {2.853, 0.931}, {1.902, 0.622}, {0.951, 0.313},
		{0, 0.004},
	},
	models.ColorYellow: {
		{0, 0}, {1.882, -1.733}, {2.47, -2.542}, {3.058, -3.351},
		{3.645, -4.16}, {4.233, -4.969}, {4.24, -5.829}, {3.424, -5.557},
		{2.836, -4.747}, {2.249, -3.938}, {1.661, -3.129}, {1.073, -2.32},
		{0.485, -1.511}, {0.136, -0.776}, {-0.469, -1.511}, {-1.057, -2.32},
		{-1.645, -3.129}, {-2.233, -3.938}, {-2.82, -4.747}, {-3.408, -5.557},
		{-4.224, -5.829}, {-4.217, -4.969}, {-3.629, -4.16}, {-3.042, -3.351},
		{-2.454, -2.542}, {-1.866, -1.733}, {-1.278, -0.924}, {-0.687, -0.365},
		{-1.573, -0.016}, {-2.524, 0.293}, {-3.475, 0.602}, {-4.426, 0.911},
		{-5.377, 1.22}, {-6.328, 1.529}, {-6.84, 2.221}, {-6.019, 2.48},
		{-5.068, 2.171}, {-4.117, 1.862}, {-3.166, 1.553}, {-2.215, 1.244},
		{-1.264, 0.935}, {-0.55, 0.545}, {-0.492, 1.496}, {-0.492, 2.496},
		{-0.492, 3.496}, {-0.492, 4.496}, {-0.492, 5.496}, {-0.492, 6.496},
		{0.008, 7.196}, {0.508, 6.496}, {0.508, 5.496}, {0.508, 4.496},
		{0.508, 3.496}, {0.508, 2.496}, {0.508, 1.496}, {0.358, 0.696},
		{1.28, 0.935}, {2.231, 1.244}, {3.182, 1.553}, {4.133, 1.862},
		{5.084, 2.171}, {6.035, 2.48}, {6.856, 2.221}, {6.344, 1.529},
		{5.393, 1.22}, {4.442, 0.911}, {3.491, 0.602}, {2.54, 0.293},
		{1.589, -0.016}, {0.782, -0.121}, {3.535, -4.858}, {2.947, -4.049},
		{2.359, -3.24}, {1.771, -2.431}, {1.184, -1.622}, {0.596, -0.813},
		{0.008, -0.004},
	},
	models.ColorBlue: {
		{0, 0}, {-1.069, -2.308}, {-1.657, -3.117}, {-2.245, -3.926},
		{-2.832, -4.735}, {-3.42, -5.545}, {-4.236, -5.817}, {-4.229, -4.957},
		{-3.641, -4.148}, {-3.054, -3.339}, {-2.466, -2.53}, {-1.878, -1.721},
		{-1.29, -0.912}, {-0.699, -0.353}, {-1.585, -0.004}, {-2.536, 0.305},
		{-3.487, 0.614}, {-4.438, 0.923}, {-5.389, 1.232}, {-6.34, 1.541},
		{-6.852, 2.233}, {-6.031, 2.492}, {-5.08, 2.183}, {-4.129, 1.874},
		{-3.178, 1.565}, {-2.227, 1.256}, {-1.276, 0.947}, {-0.562, 0.557},
		{-0.504, 1.508}, {-0.504, 2.508}, {-0.504, 3.508}, {-0.504, 4.508},
		{-0.504, 5.508}, {-0.504, 6.508}, {-0.004, 7.208}, {0.496, 6.508},
		{0.496, 5.508}, {0.496, 4.508}, {0.496, 3.508}, {0.496, 2.508},
		{0.496, 1.508}, {0.346, 0.708}, {1.268, 0.947}, {2.219, 1.256},
		{3.17, 1.565}, {4.121, 1.874}, {5.072, 2.183}, {6.023, 2.492},
		{6.844, 2.233}, {6.332, 1.541}, {5.381, 1.232}, {4.43, 0.923},
		{3.479, 0.614}, {2.528, 0.305}, {1.577, -0.004}, {0.77, -0.109},
		{1.282, -0.912}, {1.87, -1.721}, {2.458, -2.53}, {3.046, -3.339},
		{3.633, -4.148}, {4.221, -4.957}, {4.228, -5.817}, {3.412, -5.545},
		{2.824, -4.735}, {2.237, -3.926}, {1.649, -3.117}, {1.061, -2.308},
		{0.473, -1.499}, {0.124, -0.764}, {-3.531, -4.846}, {-2.943, -4.037},
		{-2.355, -3.228}, {-1.767, -2.419}, {-1.18, -1.61}, {-0.592, -0.801},
		{-0.004, 0.008},
	},
	models.ColorPurple: {
		{0, 0}, {-2.528, 0.297}, {-3.479, 0.606}, {-4.43, 0.915},
		{-5.381, 1.224}, {-6.332, 1.533}, {-6.844, 2.225}, {-6.023, 2.484},
		{-5.072, 2.175}, {-4.121, 1.866}, {-3.17, 1.557}, {-2.219, 1.248},
		{-1.268, 0.939}, {-0.554, 0.549}, {-0.496, 1.5}, {-0.496, 2.5},
		{-0.496, 3.5}, {-0.496, 4.5}, {-0.496, 5.5}, {-0.496, 6.5},
		{0.004, 7.2}, {0.504, 6.5}, {0.504, 5.5}, {0.504, 4.5},
		{0.504, 3.5}, {0.504, 2.5}, {0.504, 1.5}, {0.354, 0.7},
		{1.276, 0.939}, {2.227, 1.248}, {3.178, 1.557}, {4.129, 1.866},
		{5.08, 2.175}, {6.031, 2.484}, {6.852, 2.225}, {6.34, 1.533},
		{5.389, 1.224}, {4.438, 0.915}, {3.487, 0.606}, {2.536, 0.297},
		{1.585, -0.012}, {0.778, -0.117}, {1.29, -0.92}, {1.878, -1.729},
		{2.466, -2.538}, {3.054, -3.347}, {3.641, -4.156}, {4.229, -4.965},
		{4.236, -5.825}, {3.42, -5.553}, {2.832, -4.743}, {2.245, -3.934},
		{1.657, -3.125}, {1.069, -2.316}, {0.481, -1.507}, {0.132, -0.772},
		{-0.473, -1.507}, {-1.061, -2.316}, {-1.649, -3.125}, {-2.237, -3.934},
		{-2.824, -4.743}, {-3.412, -5.553}, {-4.228, -5.825}, {-4.221, -4.965},
		{-3.633, -4.156}, {-3.046, -3.347}, {-2.458, -2.538}, {-1.87, -1.729},
		{-1.282, -0.92}, {-0.691, -0.361}, {-5.702, 1.854}, {-4.751, 1.545},
		{-3.8, 1.236}, {-2.849, 0.927}, {-1.898, 0.618}, {-0.947, 0.309},
		{0.004, 0},
	},
}

var sixPlayerPaths = map[models.Color][]VectorCell{
	models.ColorRed: {
		{0, 0}, {-0.508, 2.492}, {-0.508, 3.492}, {-0.508, 4.492},
		{-0.508, 5.492}, {-0.508, 6.492}, {-0.008, 7.292}, {0.492, 6.492},
		{0.492, 5.492}, {0.492, 4.492}, {0.492, 3.492}, {0.492, 2.492},
		{0.492, 1.492}, {1.041, 1.175}, {1.907, 1.675}, {2.773, 2.175},
		{3.639, 2.675}, {4.505, 3.175}, {5.371, 3.675}, {6.314, 3.642},
		{5.871, 2.809}, {5.005, 2.309}, {4.139, 1.809}, {3.273, 1.309},
		{2.407, 0.809}, {1.541, 0.309}, {1.541, -0.325}, {2.407, -0.825},
		{3.273, -1.325}, {4.139, -1.825}, {5.005, -2.325}, {5.871, -2.825},
		{6.314, -3.658}, {5.371, -3.691}, {4.505, -3.191}, {3.639, -2.691},
		{2.773, -2.191}, {1.907, -1.691}, {1.041, -1.191}, {0.492, -1.508},
		{0.492, -2.508}, {0.492, -3.508}, {0.492, -4.508}, {0.492, -5.508},
		{0.492, -6.508}, {-0.008, -7.308}, {-0.508, -6.508}, {-0.508, -5.508},
		{-0.508, -4.508}, {-0.508, -3.508}, {-0.508, -2.508}, {-0.508, -1.508},
		{-1.057, -1.191}, {-1.923, -1.691}, {-2.789, -2.191}, {-3.655, -2.691},
		{-4.521, -3.191}, {-5.387, -3.691}, {-6.33, -3.658}, {-5.887, -2.825},
		{-5.021, -2.325}, {-4.155, -1.825}, {-3.289, -1.325}, {-2.423, -0.825},
		{-1.557, -0.325}, {-1.557, 0.309}, {-2.423, 0.809}, {-3.289, 1.309},
		{-4.155, 1.809}, {-5.021, 2.309}, {-5.887, 2.809}, {-6.33, 3.642},
		{-5.387, 3.675}, {-4.521, 3.175}, {-3.655, 2.675}, {-2.789, 2.175},
		{-1.923, 1.675}, {-1.057, 1.175}, {-0.008, 5.992}, {-0.008, 4.992},
		{-0.008, 3.992}, {-0.008, 2.992}, {-0.008, 1.992}, {-0.008, 0.992},
		{-0.008, -0.008},
	},
	models.ColorGreen: {
		{0, 0}, {1.915, 1.687}, {2.781, 2.187}, {3.647, 2.687},
		{4.513, 3.187}, {5.379, 3.687}, {6.322, 3.654}, {5.879, 2.821},
		{5.013, 2.321}, {4.147, 1.821}, {3.281, 1.321}, {2.415, 0.821},
		{1.549, 0.321}, {1.549, -0.313}, {2.415, -0.813}, {3.281, -1.313},
		{4.147, -1.813}, {5.013, -2.313}, {5.879, -2.813}, {6.322, -3.646},
		{5.379, -3.679}, {4.513, -3.179}, {3.647, -2.679}, {2.781, -2.179},
		{1.915, -1.679}, {1.049, -1.179}, {0.5, -1.496}, {0.5, -2.496},
		{0.5, -3.496}, {0.5, -4.496}, {0.5, -5.496}, {0.5, -6.496},
		{0, -7.296}, {-0.5, -6.496}, {-0.5, -5.496}, {-0.5, -4.496},
		{-0.5, -3.496}, {-0.5, -2.496}, {-0.5, -1.496}, {-1.049, -1.179},
		{-1.915, -1.679}, {-2.781, -2.179}, {-3.647, -2.679}, {-4.513, -3.179},
		{-5.379, -3.679}, {-6.322, -3.646}, {-5.879, -2.813}, {-5.013, -2.313},
		{-4.147, -1.813}, {-3.281, -1.313}, {-2.415, -0.813}, {-1.549, -0.313},
		{-1.549, 0.321}, {-2.415, 0.821}, {-3.281, 1.321}, {-4.147, 1.821},
		{-5.013, 2.321}, {-5.879, 2.821}, {-6.322, 3.654}, {-5.379, 3.687},
		{-4.513, 3.187}, {-3.647, 2.687}, {-2.781, 2.187}, {-1.915, 1.687},
		{-1.049, 1.187}, {-0.5, 1.504}, {-0.5, 2.504}, {-0.5, 3.504},
		{-0.5, 4.504}, {-0.5, 5.504}, {-0.5, 6.504}, {0, 7.304},
		{0.5, 6.504}, {0.5, 5.504}, {0.5, 4.504}, {0.5, 3.504},
		{0.5, 2.504}, {0.5, 1.504}, {5.196, 3.004}, {4.33, 2.504},
		{3.464, 2.004}, {2.598, 1.504}, {1.732, 1.004}, {0.866, 0.504},
		{0, 0.004},
	},
	models.ColorYellow: {
		{0, 0}, {2.423, -0.821}, {3.289, -1.321}, {4.155, -1.821},
		{5.021, -2.321}, {5.887, -2.821}, {6.33, -3.654}, {5.387, -3.687},
		{4.521, -3.187}, {3.655, -2.687}, {2.789, -2.187}, {1.923, -1.687},
		{1.057, -1.187}, {0.508, -1.504}, {0.508, -2.504}, {0.508, -3.504},
		{0.508, -4.504}, {0.508, -5.504}, {0.508, -6.504}, {0.008, -7.304},
		{-0.492, -6.504}, {-0.492, -5.504}, {-0.492, -4.504}, {-0.492, -3.504},
		{-0.492, -2.504}, {-0.492, -1.504}, {-1.041, -1.187}, {-1.907, -1.687},
		{-2.773, -2.187}, {-3.639, -2.687}, {-4.505, -3.187}, {-5.371, -3.687},
		{-6.314, -3.654}, {-5.871, -2.821}, {-5.005, -2.321}, {-4.139, -1.821},
		{-3.273, -1.321}, {-2.407, -0.821}, {-1.541, -0.321}, {-1.541, 0.313},
		{-2.407, 0.813}, {-3.273, 1.313}, {-4.139, 1.813}, {-5.005, 2.313},
		{-5.871, 2.813}, {-6.314, 3.646}, {-5.371, 3.679}, {-4.505, 3.179},
		{-3.639, 2.679}, {-2.773, 2.179}, {-1.907, 1.679}, {-1.041, 1.179},
		{-0.492, 1.496}, {-0.492, 2.496}, {-0.492, 3.496}, {-0.492, 4.496},
		{-0.492, 5.496}, {-0.492, 6.496}, {0.008, 7.296}, {0.508, 6.496},
		{0.508, 5.496}, {0.508, 4.496}, {0.508, 3.496}, {0.508, 2.496},
		{0.508, 1.496}, {1.057, 1.179}, {1.923, 1.679}, {2.789, 2.179},
		{3.655, 2.679}, {4.521, 3.179}, {5.387, 3.679}, {6.33, 3.646},
		{5.887, 2.813}, {5.021, 2.313}, {4.155, 1.813}, {3.289, 1.313},
		{2.423, 0.813}, {1.557, 0.313}, {5.204, -3.004}, {4.338, -2.504},
		{3.472, -2.004}, {2.606, -1.504}, {1.74, -1.004}, {0.874, -0.504},
		{0.008, -0.004},
	},
	models.ColorBlue: {
		{0, 0}, {0.496, -2.492}, {0.496, -3.492}, {0.496, -4.492},
		{0.496, -5.492}, {0.496, -6.492}, {-0.004, -7.292}, {-0.504, -6.492},
		{-0.504, -5.492}, {-0.504, -4.492}, {-0.504, -3.492}, {-0.504, -2.492},
		{-0.504, -1.492}, {-1.053, -1.175}, {-1.919, -1.675}, {-2.785, -2.175},
		{-3.651, -2.675}, {-4.517, -3.175}, {-5.383, -3.675}, {-6.326, -3.642},
		{-5.883, -2.809}, {-5.017, -2.309}, {-4.151, -1.809}, {-3.285, -1.309},
		{-2.419, -0.809}, {-1.553, -0.309}, {-1.553, 0.325}, {-2.419, 0.825},
		{-3.285, 1.325}, {-4.151, 1.825}, {-5.017, 2.325}, {-5.883, 2.825},
		{-6.326, 3.658}, {-5.383, 3.691}, {-4.517, 3.191}, {-3.651, 2.691},
		{-2.785, 2.191}, {-1.919, 1.691}, {-1.053, 1.191}, {-0.504, 1.508},
		{-0.504, 2.508}, {-0.504, 3.508}, {-0.504, 4.508}, {-0.504, 5.508},
		{-0.504, 6.508}, {-0.004, 7.308}, {0.496, 6.508}, {0.496, 5.508},
		{0.496, 4.508}, {0.496, 3.508}, {0.496, 2.508}, {0.496, 1.508},
		{1.045, 1.191}, {1.911, 1.691}, {2.777, 2.191}, {3.643, 2.691},
		{4.509, 3.191}, {5.375, 3.691}, {6.318, 3.658}, {5.875, 2.825},
		{5.009, 2.325}, {4.143, 1.825}, {3.277, 1.325}, {2.411, 0.825},
		{1.545, 0.325}, {1.545, -0.309}, {2.411, -0.809}, {3.277, -1.309},
		{4.143, -1.809}, {5.009, -2.309}, {5.875, -2.809}, {6.318, -3.642},
		{5.375, -3.675}, {4.509, -3.175}, {3.643, -2.675}, {2.777, -2.175},
		{1.911, -1.675}, {1.045, -1.175}, {-0.004, -5.992}, {-0.004, -4.992},
		{-0.004, -3.992}, {-0.004, -2.992}, {-0.004, -1.992}, {-0.004, -0.992},
		{-0.004, 0.008},
	},
	models.ColorPurple: {
		{0, 0}, {-1.911, -1.683}, {-2.777, -2.183}, {-3.643, -2.683},
		{-4.509, -3.183}, {-5.375, -3.683}, {-6.318, -3.65}, {-5.875, -2.817},
		{-5.009, -2.317}, {-4.143, -1.817}, {-3.277, -1.317}, {-2.411, -0.817},
		{-1.545, -0.317}, {-1.545, 0.317}, {-2.411, 0.817}, {-3.277, 1.317},
		{-4.143, 1.817}, {-5.009, 2.317}, {-5.875, 2.817}, {-6.318, 3.65},
		{-5.375, 3.683}, {-4.509, 3.183}, {-3.643, 2.683}, {-2.777, 2.183},
		{-1.911, 1.683}, {-1.045, 1.183}, {-0.496, 1.5}, {-0.496, 2.5},
		{-0.496, 3.5}, {-0.496, 4.5}, {-0.496, 5.5}, {-0.496, 6.5},
		{0.004, 7.3}, {0.504, 6.5}, {0.504, 5.5}, {0.504, 4.5},
		{0.504, 3.5}, {0.504, 2.5}, {0.504, 1.5}, {1.053, 1.183},
		{1.919, 1.683}, {2.785, 2.183}, {3.651, 2.683}, {4.517, 3.183},
		{5.383, 3.683}, {6.326, 3.65}, {5.883, 2.817}, {5.017, 2.317},
		{4.151, 1.817}, {3.285, 1.317}, {2.419, 0.817}, {1.553, 0.317},
		{1.553, -0.317}, {2.419, -0.817}, {3.285, -1.317}, {4.151, -1.817},
		{5.017, -2.317}, {5.883, -2.817}, {6.326, -3.65}, {5.383, -3.683},
		{4.517, -3.183}, {3.651, -2.683}, {2.785, -2.183}, {1.919, -1.683},
		{1.053, -1.183}, {0.504, -1.5}, {0.504, -2.5}, {0.504, -3.5},
		{0.504, -4.5}, {0.504, -5.5}, {0.504, -6.5}, {0.004, -7.3},
		{-0.496, -6.5}, {-0.496, -5.5}, {-0.496, -4.5}, {-0.496, -3.5},
		{-0.496, -2.5}, {-0.496, -1.5}, {-5.192, -3.0}, {-4.326, -2.5},
		{-3.46, -2.0}, {-2.594, -1.5}, {-1.728, -1.0}, {-0.862, -0.5},
		{0.004, 0},
	},
	models.ColorOrange: {
		{0, 0}, {-2.423, 0.809}, {-3.289, 1.309}, {-4.155, 1.809},
		{-5.021, 2.309}, {-5.887, 2.809}, {-6.33, 3.642}, {-5.387, 3.675},
		{-4.521, 3.175}, {-3.655, 2.675}, {-2.789, 2.175}, {-1.923, 1.675},
		{-1.057, 1.175}, {-0.508, 1.492}, {-0.508, 2.492}, {-0.508, 3.492},
		{-0.508, 4.492}, {-0.508, 5.492}, {-0.508, 6.492}, {-0.008, 7.292},
		{0.492, 6.492}, {0.492, 5.492}, {0.492, 4.492}, {0.492, 3.492},
		{0.492, 2.492}, {0.492, 1.492}, {1.041, 1.175}, {1.907, 1.675},
		{2.773, 2.175}, {3.639, 2.675}, {4.505, 3.175}, {5.371, 3.675},
		{6.314, 3.642}, {5.871, 2.809}, {5.005, 2.309}, {4.139, 1.809},
		{3.273, 1.309}, {2.407, 0.809}, {1.541, 0.309}, {1.541, -0.325},
		{2.407, -0.825}, {3.273, -1.325}, {4.139, -1.825}, {5.005, -2.325},
		{5.871, -2.825}, {6.314, -3.658}, {5.371, -3.691}, {4.505, -3.191},
		{3.639, -2.691}, {2.773, -2.191}, {1.907, -1.691}, {1.041, -1.191},
		{0.492, -1.508}, {0.492, -2.508}, {0.492, -3.508}, {0.492, -4.508},
		{0.492, -5.508}, {0.492, -6.508}, {-0.008, -7.308}, {-0.508, -6.508},
		{-0.508, -5.508}, {-0.508, -4.508}, {-0.508, -3.508}, {-0.508, -2.508},
		{-0.508, -1.508}, {-1.057, -1.191}, {-1.923, -1.691}, {-2.789, -2.191},
		{-3.655, -2.691}, {-4.521, -3.191}, {-5.387, -3.691}, {-6.33, -3.658},
		{-5.887, -2.825}, {-5.021, -2.325}, {-4.155, -1.825}, {-3.289, -1.325},
		{-2.423, -0.825}, {-1.557, -0.325}, {-5.204, 2.992}, {-4.338, 2.492},
		{-3.472, 1.992}, {-2.606, 1.492}, {-1.74, 0.992}, {-0.874, 0.492},
		{-0.008, -0.008},
	},
}
