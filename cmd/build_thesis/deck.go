package main

import (
	goodp "github.com/VantageDataChat/GoODP"
)

// deckSlideCount is the required size of the deck; the build aborts if
// thesisDeck ever drifts from it.
const deckSlideCount = 20

// thesisDeck is the fixed slide list for the thesis presentation. Pure
// data; the figures live under the project-relative paths below.
var thesisDeck = []goodp.SlideSpec{
	{
		Layout: goodp.LayoutTitle,
		Title:  "Τμηματοποίηση Πλακούντα σε MRI",
		Subtitle: []string{
			"με τεχνικές Βαθιάς Μάθησης",
			"Διπλωματική Εργασία - Γρηγόριος Τσένος",
			"Επιβλέπων: Γεώργιος Ματσόπουλος | Φεβρουάριος 2026",
		},
	},
	{
		Layout: goodp.LayoutText,
		Title:  "Δομή Παρουσίασης",
		Bullets: []string{
			"Κίνητρο και πρόβλημα τμηματοποίησης πλακούντα σε 3D MRI",
			"Δεδομένα, προεπεξεργασία και κοινό πειραματικό πρωτόκολλο",
			"Αρχιτεκτονικές: CNN, Transformer, SSM/Mamba",
			"Ποσοτικά και ποιοτικά αποτελέσματα",
			"Συμπεράσματα, περιορισμοί και μελλοντικές κατευθύνσεις",
		},
	},
	{
		Layout: goodp.LayoutMix,
		Title:  "Κλινικό Υπόβαθρο και Κίνητρο",
		Bullets: []string{
			"Ο πλακούντας είναι κρίσιμο όργανο για την έκβαση της κύησης",
			"Η MRI επιτρέπει ποσοτική ανάλυση όγκου και μορφολογίας",
			"Η χειροκίνητη τμηματοποίηση είναι χρονοβόρα και μεταβλητή",
			"Στόχος: αυτοματοποιημένη, συνεπής και αναπαραγώγιμη τμηματοποίηση",
		},
		Image: "Thesis Doc/figures/Stages-Placenta.png",
	},
	{
		Layout: goodp.LayoutText,
		Title:  "Πρόβλημα και Στόχοι Εργασίας",
		Bullets: []string{
			"Δυαδική τμηματοποίηση πλακούντα σε ογκομετρικά MRI",
			"Σύγκριση 7+ αρχιτεκτονικών σε ίδιες συνθήκες εκπαίδευσης",
			"Αξιολόγηση με Dice, IoU και validation loss",
			"Ερμηνεία επιδόσεων με καμπύλες σύγκλισης και οπτική επιθεώρηση",
		},
	},
	{
		Layout: goodp.LayoutText,
		Title:  "Σύνολο Δεδομένων",
		Bullets: []string{
			"N = 137 περιπτώσεις, με MRI όγκο + δυαδική μάσκα (.nii.gz)",
			"Διαχωρισμός 80/20 με σταθερό seed=121",
			"109 περιπτώσεις train και 28 validation",
			"Βασική μονάδα αξιολόγησης: ολόκληρος 3D όγκος (case-level)",
		},
	},
	{
		Layout:  goodp.LayoutImage,
		Title:   "Παράδειγμα 3D MRI και Μάσκας Πλακούντα",
		Image:   "Thesis Doc/figures/First Slice along segmentation and 3D view.png",
		Caption: "MRI τομή, αντίστοιχη μάσκα και 3D απεικόνιση περιοχής ενδιαφέροντος",
	},
	{
		Layout: goodp.LayoutText,
		Title:  "Προεπεξεργασία και Εκπαίδευση",
		Bullets: []string{
			"Orientation/Spacing εναρμόνιση και intensity normalization",
			"Foreground cropping και padding σε roi_size=(96,96,64)",
			"Patch-based εκπαίδευση με ελεγχόμενο pos/neg sampling",
			"Στοχαστικές επαυξήσεις: flips, affine, gaussian noise/smoothing",
			"120 epochs με κοινή ροή για όλες τις αρχιτεκτονικές",
		},
	},
	{
		Layout: goodp.LayoutText,
		Title:  "Αρχιτεκτονικές που Συγκρίθηκαν",
		Bullets: []string{
			"CNN-based: U-Net, Attention U-Net, DynUNet, SegResNet",
			"Transformer-based: UNETR, SwinUNETR",
			"SSM/Mamba-based: SegMamba",
			"Όλα τα μοντέλα σε ενιαίο pipeline για δίκαιη σύγκριση",
		},
	},
	{
		Layout:  goodp.LayoutImage,
		Title:   "U-Net και 3D Encoder-Decoder Λογική",
		Image:   "Thesis Doc/figures/u-net-architecture.png",
		Caption: "Skip connections για μεταφορά λεπτομέρειας και ακριβέστερα όρια",
	},
	{
		Layout:  goodp.LayoutImage,
		Title:   "UNETR vs SwinUNETR",
		Image:   "Thesis Doc/figures/swin vs vit.png",
		Caption: "Ιεραρχικός Swin encoder με local windows έναντι ViT-style encoder",
	},
	{
		Layout: goodp.LayoutText,
		Title:  "SSM/Mamba και SegMamba",
		Bullets: []string{
			"Selective State Space Modeling για μακρινές εξαρτήσεις",
			"Γραμμική κλιμάκωση ως προς το μήκος ακολουθίας",
			"Στόχος: καλύτερη αποδοτικότητα από πλήρες self-attention σε 3D",
			"Στο πείραμα: κορυφαία ισορροπία ποιότητας και σταθερότητας",
		},
	},
	{
		Layout: goodp.LayoutText,
		Title:  "Μετρικές Αξιολόγησης",
		Bullets: []string{
			"Dice (DSC): βασική μετρική επικάλυψης πρόβλεψης/ground truth",
			"IoU (Jaccard): συμπληρωματική μετρική επικάλυψης",
			"Validation Loss: δείκτης συνολικής βελτιστοποίησης",
			"Συνδυαστική ανάγνωση: αριθμητικές τιμές + ποιοτική επιθεώρηση",
		},
	},
	{
		Layout: goodp.LayoutText,
		Title:  "Κύρια Ποσοτικά Αποτελέσματα (Validation)",
		Bullets: []string{
			"SegMamba 1: Dice=0.8606 | IoU=0.7566 | ValLoss=0.1685",
			"SegResNet 1: Dice=0.8601 | IoU=0.7558 | ValLoss=0.1678",
			"SwinUNETR: Dice=0.8490 | IoU=0.7401 | ValLoss=0.1838",
			"UNETR: Dice=0.7720 | IoU=0.6345 | ValLoss=0.2842",
			"Διαφορές κορυφής μικρές (~0.002-0.003 Dice)",
		},
	},
	{
		Layout: goodp.LayoutText,
		Title:  "Συνοπτική Κατάταξη και Ευρήματα",
		Bullets: []string{
			"Ομάδα κορυφής γύρω από Dice≈0.86: SegMamba + SegResNet",
			"SwinUNETR: καλύτερο Transformer, αλλά ~0.01 πίσω από κορυφή",
			"UNETR: σαφές outlier στο συγκεκριμένο split",
			"Οι βαριές παραλλαγές κερδίζουν λίγο αλλά μετρήσιμα",
		},
	},
	{
		Layout:       goodp.LayoutSplit,
		Title:        "Καμπύλες Εκπαίδευσης (CNN Μοντέλα)",
		ImageLeft:    "Thesis Doc/figures/history_attentionUnet.png",
		ImageRight:   "Thesis Doc/figures/history_segresHeavy.png",
		CaptionLeft:  "Attention U-Net",
		CaptionRight: "SegResNet 1",
	},
	{
		Layout:       goodp.LayoutSplit,
		Title:        "Καμπύλες Εκπαίδευσης (UNETR vs SegMamba)",
		ImageLeft:    "Thesis Doc/figures/history_UNETR.png",
		ImageRight:   "Thesis Doc/figures/history_segmambaheavy.png",
		CaptionLeft:  "UNETR",
		CaptionRight: "SegMamba 1",
	},
	{
		Layout:  goodp.LayoutImage,
		Title:   "Ποιοτική Αξιολόγηση: SegResNet",
		Image:   "Thesis Doc/figures/segmentation_masks_SegResHeavy.png",
		Caption: "Συνεκτικές μάσκες με καλή μορφολογική συμφωνία και περιορισμένα false positives",
	},
	{
		Layout:       goodp.LayoutSplit,
		Title:        "Ποιοτική Αξιολόγηση: Outlier vs Κορυφή",
		ImageLeft:    "Thesis Doc/figures/segmentation_masks_UNETR.png",
		ImageRight:   "Thesis Doc/figures/segmentation_masks_segmambaHEAVY.png",
		CaptionLeft:  "UNETR",
		CaptionRight: "SegMamba 1",
	},
	{
		Layout: goodp.LayoutText,
		Title:  "Συζήτηση, Περιορισμοί, Επεκτάσεις",
		Bullets: []string{
			"Η κατάταξη είναι ισχυρή συγκριτικά, αλλά βασίζεται σε ένα validation split",
			"Οι οπτικές συγκρίσεις είναι 2D τομές ενώ η αξιολόγηση είναι 3D",
			"Μελλοντικά: cross-validation, ανεξάρτητο test set, boundary metrics",
			"Ενσωμάτωση πλήρους end-to-end pipeline για αυτόματο ROI localization",
		},
	},
	{
		Layout: goodp.LayoutClosing,
		Title:  "Συμπεράσματα",
		Bullets: []string{
			"SegMamba και SegResNet έδωσαν την καλύτερη συνολική επίδοση",
			"Το SwinUNETR ήταν ανταγωνιστικό και σαφώς ισχυρότερο από UNETR",
			"Η επιλογή μοντέλου στην πράξη εξαρτάται και από VRAM/χρόνο inference",
			"Ευχαριστώ για την προσοχή σας",
		},
	},
}
